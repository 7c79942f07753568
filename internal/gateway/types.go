package gateway

import (
	"time"

	"shareit/pkg/response"
)

type userCreateBody struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"required,email"`
}

type userUpdateBody struct {
	Name  *string `json:"name" validate:"omitempty,notblank"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type itemCreateBody struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId" validate:"omitempty,gt=0"`
}

type commentBody struct {
	Text string `json:"text" validate:"required"`
}

type requestCreateBody struct {
	Description string `json:"description" validate:"required"`
}

type bookingCreateBody struct {
	ItemID *int64             `json:"itemId"`
	Start  *response.DateTime `json:"start"`
	End    *response.DateTime `json:"end"`
}

// bookingCreate is bookingCreateBody with plain times so the date rules apply.
type bookingCreate struct {
	ItemID *int64     `json:"itemId" validate:"required"`
	Start  *time.Time `json:"start" validate:"required,notpast"`
	End    *time.Time `json:"end" validate:"required,future"`
}

func (b bookingCreateBody) toValidated() bookingCreate {
	out := bookingCreate{ItemID: b.ItemID}
	if b.Start != nil {
		t := b.Start.Time()
		out.Start = &t
	}
	if b.End != nil {
		t := b.End.Time()
		out.End = &t
	}
	return out
}
