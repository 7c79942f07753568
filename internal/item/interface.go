package item

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateItemInput) (CreateItemOutput, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (DetailItemOutput, error)
	List(ctx context.Context, sc model.Scope) (ListItemsOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, input SearchItemsInput) (SearchItemsOutput, error)
	AddComment(ctx context.Context, sc model.Scope, input AddCommentInput) (AddCommentOutput, error)
}
