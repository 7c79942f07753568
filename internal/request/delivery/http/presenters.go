package http

import (
	"shareit/internal/model"
	"shareit/internal/request"
	"shareit/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Description string `json:"description" binding:"required,max=1000"`
}

func (r createReq) toInput() request.CreateRequestInput {
	return request.CreateRequestInput{Description: r.Description}
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId"`
}

type requestResp struct {
	ID          int64             `json:"id"`
	Description string            `json:"description"`
	RequestorID int64             `json:"requestorId"`
	Created     response.DateTime `json:"created"`
	Items       []itemResp        `json:"items"`
}

func newRequestResp(v request.RequestView) requestResp {
	items := make([]itemResp, len(v.Items))
	for i, it := range v.Items {
		items[i] = newItemResp(it)
	}
	return requestResp{
		ID:          v.Request.ID,
		Description: v.Request.Description,
		RequestorID: v.Request.RequestorID,
		Created:     response.DateTime(v.Request.Created),
		Items:       items,
	}
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		OwnerID:     it.OwnerID,
		RequestID:   it.RequestID,
	}
}

func (h *handler) newListResp(out request.ListRequestsOutput) []requestResp {
	requests := make([]requestResp, len(out.Requests))
	for i, v := range out.Requests {
		requests[i] = newRequestResp(v)
	}
	return requests
}
