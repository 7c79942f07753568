package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the composed interface for the item domain data store.
type Repository interface {
	ItemRepository
	CommentRepository
}

// ItemRepository defines data access for Item.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	// GetOneItem returns a zero value (ID == 0) when the item does not exist.
	GetOneItem(ctx context.Context, id int64) (model.Item, error)
	// ListItems returns items ordered by id.
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)
	SearchItems(ctx context.Context, opt SearchItemsOptions) ([]model.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// CommentRepository defines data access for Comment. Returned comments carry the author name.
type CommentRepository interface {
	CreateComment(ctx context.Context, opt CreateCommentOptions) (model.Comment, error)
	// ListComments returns comments on the given items, oldest first.
	ListComments(ctx context.Context, itemIDs []int64) ([]model.Comment, error)
}
