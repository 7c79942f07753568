package repository

import (
	"context"

	"shareit/internal/model"
)

// Repository is the composed interface for the booking data store.
type Repository interface {
	BookingRepository
}

// BookingRepository defines data access for Booking. Returned bookings carry
// their item and booker.
type BookingRepository interface {
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (model.Booking, error)
	// GetOneBooking returns a zero value (ID == 0) when the booking does not exist.
	GetOneBooking(ctx context.Context, id int64) (model.Booking, error)
	// UpdateBookingStatus overwrites the status unconditionally and returns the updated booking.
	UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) (model.Booking, error)
	// ListBookings returns matching bookings ordered by start time, newest first.
	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]model.Booking, error)
}
