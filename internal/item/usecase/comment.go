package usecase

import (
	"context"

	bookingRepo "shareit/internal/booking/repository"
	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// AddComment lets a user who has finished renting an item comment on it.
// Author name and creation time are stamped here.
func (uc *implUseCase) AddComment(ctx context.Context, sc model.Scope, input item.AddCommentInput) (item.AddCommentOutput, error) {
	if err := uc.ensureUser(ctx, sc.UserID); err != nil {
		return item.AddCommentOutput{}, err
	}

	it, err := uc.repo.GetOneItem(ctx, input.ItemID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddComment GetOneItem: %v", err)
		return item.AddCommentOutput{}, err
	}
	if it.ID == 0 {
		return item.AddCommentOutput{}, item.ErrItemNotFound
	}

	now := uc.now()
	past, err := uc.bookingRepo.ListBookings(ctx, bookingRepo.ListBookingsOptions{
		BookerID: sc.UserID,
		ItemIDs:  []int64{it.ID},
		State:    model.BookingStatePast,
		Now:      now,
		Limit:    1,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddComment ListBookings: %v", err)
		return item.AddCommentOutput{}, err
	}
	if len(past) == 0 {
		return item.AddCommentOutput{}, item.ErrNeverRented
	}

	c, err := uc.repo.CreateComment(ctx, repo.CreateCommentOptions{
		Text:     input.Text,
		ItemID:   it.ID,
		AuthorID: sc.UserID,
		Created:  now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddComment CreateComment: %v", err)
		return item.AddCommentOutput{}, err
	}
	return item.AddCommentOutput{Comment: c}, nil
}
