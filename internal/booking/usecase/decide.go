package usecase

import (
	"context"

	"shareit/internal/booking"
	"shareit/internal/model"
)

// Approve accepts a booking on an item owned by the caller.
func (uc *implUseCase) Approve(ctx context.Context, sc model.Scope, id int64) (booking.DecideBookingOutput, error) {
	return uc.decide(ctx, sc, id, model.BookingStatusApproved, booking.ErrApproveNotOwner)
}

// Reject declines a booking on an item owned by the caller. Rejecting twice is allowed.
func (uc *implUseCase) Reject(ctx context.Context, sc model.Scope, id int64) (booking.DecideBookingOutput, error) {
	return uc.decide(ctx, sc, id, model.BookingStatusRejected, booking.ErrRejectNotOwner)
}

// decide moves a booking to status to. The status write is unconditional,
// so concurrent decisions resolve as last writer wins.
func (uc *implUseCase) decide(ctx context.Context, sc model.Scope, id int64, to model.BookingStatus, errNotOwner error) (booking.DecideBookingOutput, error) {
	if err := uc.ensureUser(ctx, sc.UserID); err != nil {
		return booking.DecideBookingOutput{}, err
	}

	b, err := uc.getBooking(ctx, id)
	if err != nil {
		return booking.DecideBookingOutput{}, err
	}
	if !b.Item.IsOwnedBy(sc.UserID) {
		return booking.DecideBookingOutput{}, errNotOwner
	}
	if !b.Status.CanTransition(to) {
		return booking.DecideBookingOutput{}, booking.ErrAlreadyApproved
	}

	updated, err := uc.repo.UpdateBookingStatus(ctx, b.ID, to)
	if err != nil {
		uc.l.Errorf(ctx, "uc.decide UpdateBookingStatus: %v", err)
		return booking.DecideBookingOutput{}, err
	}
	if updated.ID == 0 {
		return booking.DecideBookingOutput{}, booking.ErrBookingNotFound
	}
	return booking.DecideBookingOutput{Booking: updated}, nil
}
