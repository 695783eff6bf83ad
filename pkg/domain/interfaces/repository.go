package interfaces

import (
	"context"

	"github.com/secmon-lab/octoclone/pkg/domain/model"
	"github.com/secmon-lab/octoclone/pkg/domain/types"
)

// CloneHistory records completed clone operations for the web mode listing.
type CloneHistory interface {
	Add(ctx context.Context, record *model.CloneRecord) error
	Get(ctx context.Context, id types.RequestID) (*model.CloneRecord, error)
	List(ctx context.Context) ([]*model.CloneRecord, error)
}
