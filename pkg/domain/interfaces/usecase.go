package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/octoclone/pkg/domain/model"
)

type UseCase interface {
	CloneIssue(ctx context.Context, input *model.CloneIssueInput) (*model.CloneIssueOutput, error)
	GetCloneRecord(ctx context.Context, id string) (*model.CloneRecord, error)
	ListCloneRecords(ctx context.Context) ([]*model.CloneRecord, error)
}
