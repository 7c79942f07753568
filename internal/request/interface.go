package request

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateRequestInput) (CreateRequestOutput, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (DetailRequestOutput, error)
	ListOwn(ctx context.Context, sc model.Scope) (ListRequestsOutput, error)
	ListAll(ctx context.Context, sc model.Scope, input ListAllInput) (ListRequestsOutput, error)
}
