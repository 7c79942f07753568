package repository

import (
	"time"

	"shareit/internal/model"
)

// CreateBookingOptions holds parameters for inserting a new Booking.
type CreateBookingOptions struct {
	Start    time.Time
	End      time.Time
	ItemID   int64
	BookerID int64
	Status   model.BookingStatus
}

// ListBookingsOptions filters ListBookings. Zero-valued fields are ignored.
// State is evaluated against Now.
type ListBookingsOptions struct {
	BookerID int64
	OwnerID  int64
	ItemIDs  []int64
	Status   model.BookingStatus
	State    model.BookingState
	Now      time.Time
	Limit    int
	Offset   int
}
