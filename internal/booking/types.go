package booking

import (
	"time"

	"shareit/internal/model"
	"shareit/pkg/paging"
)

// View selects which side of a booking the caller lists from.
type View int

const (
	ViewBooker View = iota // bookings made by the caller
	ViewOwner              // bookings on items owned by the caller
)

// --- UseCase Inputs ---

type CreateBookingInput struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type ListBookingsInput struct {
	View   View
	State  model.BookingState
	Paging paging.Query
}

// --- UseCase Outputs ---

type CreateBookingOutput struct {
	Booking model.Booking
}

type DecideBookingOutput struct {
	Booking model.Booking
}

type DetailBookingOutput struct {
	Booking model.Booking
}

type ListBookingsOutput struct {
	Bookings []model.Booking
}
