package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclone/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclone/pkg/domain/model"
	"github.com/secmon-lab/octoclone/pkg/domain/types"
	"github.com/secmon-lab/octoclone/pkg/repository"
)

// New creates a new in-memory clone history
func New() interfaces.CloneHistory {
	return &cloneHistory{
		byID: make(map[types.RequestID]*model.CloneRecord),
	}
}

type cloneHistory struct {
	mu      sync.RWMutex
	records []*model.CloneRecord
	byID    map[types.RequestID]*model.CloneRecord
}

func (r *cloneHistory) Add(ctx context.Context, record *model.CloneRecord) error {
	if record == nil || record.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "clone record must have an ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := copyRecord(record)
	r.records = append(r.records, c)
	r.byID[c.ID] = c

	return nil
}

func (r *cloneHistory) Get(ctx context.Context, id types.RequestID) (*model.CloneRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.byID[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "clone record not found",
			goerr.V("id", id),
		)
	}

	return copyRecord(record), nil
}

func (r *cloneHistory) List(ctx context.Context) ([]*model.CloneRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*model.CloneRecord, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, copyRecord(record))
	}

	return records, nil
}

func copyRecord(src *model.CloneRecord) *model.CloneRecord {
	dst := *src
	return &dst
}
