package repository

import "time"

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// ListItemsOptions filters ListItems. Zero-valued fields are ignored.
type ListItemsOptions struct {
	OwnerID    int64
	RequestIDs []int64
}

// SearchItemsOptions matches available items whose name or description
// contains Text, ignoring case.
type SearchItemsOptions struct {
	Text   string
	Limit  int
	Offset int
}

// UpdateItemOptions holds the full new state of an existing Item.
// Owner and request link are not updatable.
type UpdateItemOptions struct {
	ID          int64
	Name        string
	Description string
	Available   bool
}

// CreateCommentOptions holds parameters for inserting a new Comment.
type CreateCommentOptions struct {
	Text     string
	ItemID   int64
	AuthorID int64
	Created  time.Time
}
