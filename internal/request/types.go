package request

import (
	"shareit/internal/model"
	"shareit/pkg/paging"
)

// --- UseCase Inputs ---

type CreateRequestInput struct {
	Description string
}

type ListAllInput struct {
	Paging paging.Query
}

// --- UseCase Outputs ---

// RequestView is a request together with the items listed in response to it.
type RequestView struct {
	Request model.ItemRequest
	Items   []model.Item
}

type CreateRequestOutput struct {
	RequestView
}

type DetailRequestOutput struct {
	RequestView
}

type ListRequestsOutput struct {
	Requests []RequestView
}
