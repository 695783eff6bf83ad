package usecase

import (
	"context"

	"github.com/secmon-lab/octoclone/pkg/domain/model"
	"github.com/secmon-lab/octoclone/pkg/domain/types"
)

func (x *UseCase) GetCloneRecord(ctx context.Context, id string) (*model.CloneRecord, error) {
	return x.clients.CloneHistory().Get(ctx, types.RequestID(id))
}

func (x *UseCase) ListCloneRecords(ctx context.Context) ([]*model.CloneRecord, error) {
	return x.clients.CloneHistory().List(ctx)
}
