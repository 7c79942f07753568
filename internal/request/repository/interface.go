package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the composed interface for the item request data store.
type Repository interface {
	RequestRepository
}

// RequestRepository defines data access for ItemRequest.
type RequestRepository interface {
	CreateRequest(ctx context.Context, opt CreateRequestOptions) (model.ItemRequest, error)
	// GetOneRequest returns a zero value (ID == 0) when the request does not exist.
	GetOneRequest(ctx context.Context, id int64) (model.ItemRequest, error)
	// ListRequests returns requests newest first.
	ListRequests(ctx context.Context, opt ListRequestsOptions) ([]model.ItemRequest, error)
}
