package usecase

import (
	"context"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
)

// Create books an item for the caller. The new booking waits for the owner's decision.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input booking.CreateBookingInput) (booking.CreateBookingOutput, error) {
	if err := uc.ensureUser(ctx, sc.UserID); err != nil {
		return booking.CreateBookingOutput{}, err
	}

	it, err := uc.itemRepo.GetOneItem(ctx, input.ItemID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneItem: %v", err)
		return booking.CreateBookingOutput{}, err
	}
	if it.ID == 0 {
		return booking.CreateBookingOutput{}, booking.ErrItemNotFound
	}
	if !it.Available {
		return booking.CreateBookingOutput{}, booking.ErrItemUnavailable
	}
	if !input.End.After(input.Start) {
		return booking.CreateBookingOutput{}, booking.ErrInvalidDateRange
	}
	if it.IsOwnedBy(sc.UserID) {
		return booking.CreateBookingOutput{}, booking.ErrBookerIsOwner
	}

	b, err := uc.repo.CreateBooking(ctx, repo.CreateBookingOptions{
		Start:    input.Start,
		End:      input.End,
		ItemID:   it.ID,
		BookerID: sc.UserID,
		Status:   model.BookingStatusWaiting,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateBooking: %v", err)
		return booking.CreateBookingOutput{}, err
	}
	return booking.CreateBookingOutput{Booking: b}, nil
}
