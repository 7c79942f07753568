package usecase

import (
	"context"

	"shareit/internal/booking"
	"shareit/internal/model"
	userRepo "shareit/internal/user/repository"
)

func (uc *implUseCase) ensureUser(ctx context.Context, id int64) error {
	u, err := uc.userRepo.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ensureUser GetOneUser: %v", err)
		return err
	}
	if u.ID == 0 {
		return booking.ErrUserNotFound
	}
	return nil
}

func (uc *implUseCase) getBooking(ctx context.Context, id int64) (model.Booking, error) {
	b, err := uc.repo.GetOneBooking(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.getBooking GetOneBooking: %v", err)
		return model.Booking{}, err
	}
	if b.ID == 0 {
		return model.Booking{}, booking.ErrBookingNotFound
	}
	return b, nil
}
