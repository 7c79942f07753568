package http

import (
	"shareit/internal/booking"
	"shareit/internal/model"
	"shareit/pkg/paging"
	"shareit/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	ItemID int64              `json:"itemId" binding:"required"`
	Start  *response.DateTime `json:"start"  binding:"required"`
	End    *response.DateTime `json:"end"    binding:"required"`
}

func (r createReq) toInput() booking.CreateBookingInput {
	return booking.CreateBookingInput{
		ItemID: r.ItemID,
		Start:  r.Start.Time(),
		End:    r.End.Time(),
	}
}

// ---

type decideReq struct {
	ID       int64
	Approved bool
}

// ---

type listReq struct {
	View   booking.View
	State  model.BookingState
	Paging paging.Query
}

func (r listReq) toInput() booking.ListBookingsInput {
	return booking.ListBookingsInput{
		View:   r.View,
		State:  r.State,
		Paging: r.Paging,
	}
}

// --- Response DTOs ---

type userShortResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type itemShortResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookingResp struct {
	ID     int64             `json:"id"`
	Start  response.DateTime `json:"start"`
	End    response.DateTime `json:"end"`
	Status string            `json:"status"`
	Booker userShortResp     `json:"booker"`
	Item   itemShortResp     `json:"item"`
}

func newBookingResp(b model.Booking) bookingResp {
	return bookingResp{
		ID:     b.ID,
		Start:  response.DateTime(b.Start),
		End:    response.DateTime(b.End),
		Status: string(b.Status),
		Booker: userShortResp{ID: b.Booker.ID, Name: b.Booker.Name},
		Item:   itemShortResp{ID: b.Item.ID, Name: b.Item.Name},
	}
}

func (h *handler) newListResp(out booking.ListBookingsOutput) []bookingResp {
	bookings := make([]bookingResp, len(out.Bookings))
	for i, b := range out.Bookings {
		bookings[i] = newBookingResp(b)
	}
	return bookings
}
