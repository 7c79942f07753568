package item

import (
	"shareit/internal/model"
	"shareit/pkg/paging"
)

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// UpdateItemInput is a partial update: a nil field keeps the stored value.
type UpdateItemInput struct {
	ID          int64
	Name        *string
	Description *string
	Available   *bool
}

type SearchItemsInput struct {
	Text   string
	Paging paging.Query
}

type AddCommentInput struct {
	ItemID int64
	Text   string
}

// --- UseCase Outputs ---

// ItemView is an item with its comments and, for the owner only,
// the surrounding approved bookings.
type ItemView struct {
	Item        model.Item
	Comments    []model.Comment
	LastBooking *model.Booking
	NextBooking *model.Booking
}

type CreateItemOutput struct {
	Item model.Item
}

type DetailItemOutput struct {
	ItemView
}

type ListItemsOutput struct {
	Items []ItemView
}

type UpdateItemOutput struct {
	Item model.Item
}

type SearchItemsOutput struct {
	Items []model.Item
}

type AddCommentOutput struct {
	Comment model.Comment
}
