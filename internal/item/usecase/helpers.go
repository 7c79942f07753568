package usecase

import (
	"context"
	"time"

	"shareit/internal/item"
	"shareit/internal/model"
	userRepo "shareit/internal/user/repository"
)

func coalesce[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}

func (uc *implUseCase) ensureUser(ctx context.Context, id int64) error {
	u, err := uc.userRepo.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ensureUser GetOneUser: %v", err)
		return err
	}
	if u.ID == 0 {
		return item.ErrUserNotFound
	}
	return nil
}

// lastAndNext picks, from bookings ordered newest start first, the latest one
// that started before now and the earliest one that starts after now.
func lastAndNext(bookings []model.Booking, now time.Time) (last, next *model.Booking) {
	for i := range bookings {
		b := bookings[i]
		switch {
		case b.Start.Before(now):
			if last == nil {
				last = &b
			}
		case b.Start.After(now):
			next = &b
		}
	}
	return last, next
}

func itemIDs(items []model.Item) []int64 {
	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
