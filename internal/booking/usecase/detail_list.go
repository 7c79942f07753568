package usecase

import (
	"context"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
)

// Detail returns a booking visible to its booker or the item owner.
// Anyone else gets ErrBookingNotFound.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (booking.DetailBookingOutput, error) {
	if err := uc.ensureUser(ctx, sc.UserID); err != nil {
		return booking.DetailBookingOutput{}, err
	}

	b, err := uc.getBooking(ctx, id)
	if err != nil {
		return booking.DetailBookingOutput{}, err
	}
	if b.Booker.ID != sc.UserID && !b.Item.IsOwnedBy(sc.UserID) {
		return booking.DetailBookingOutput{}, booking.ErrBookingNotFound
	}
	return booking.DetailBookingOutput{Booking: b}, nil
}

// List returns the caller's bookings, as booker or as owner, filtered by state
// and ordered newest start first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input booking.ListBookingsInput) (booking.ListBookingsOutput, error) {
	if err := input.Paging.Validate(); err != nil {
		return booking.ListBookingsOutput{}, booking.ErrInvalidPaging
	}
	if err := uc.ensureUser(ctx, sc.UserID); err != nil {
		return booking.ListBookingsOutput{}, err
	}
	if !input.State.Valid() {
		return booking.ListBookingsOutput{}, booking.ErrUnknownState
	}

	opt := repo.ListBookingsOptions{
		State:  input.State,
		Now:    uc.now(),
		Limit:  input.Paging.Limit(),
		Offset: input.Paging.Offset(),
	}
	if input.View == booking.ViewOwner {
		opt.OwnerID = sc.UserID
	} else {
		opt.BookerID = sc.UserID
	}

	bookings, err := uc.repo.ListBookings(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListBookings: %v", err)
		return booking.ListBookingsOutput{}, err
	}
	return booking.ListBookingsOutput{Bookings: bookings}, nil
}
