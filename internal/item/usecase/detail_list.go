package usecase

import (
	"context"

	bookingRepo "shareit/internal/booking/repository"
	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Detail returns one item with its comments. The owner also sees the last
// and next approved bookings.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (item.DetailItemOutput, error) {
	if err := uc.ensureUser(ctx, sc.UserID); err != nil {
		return item.DetailItemOutput{}, err
	}

	it, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.DetailItemOutput{}, err
	}
	if it.ID == 0 {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}

	var owned []model.Item
	if it.IsOwnedBy(sc.UserID) {
		owned = []model.Item{it}
	}
	views, err := uc.buildViews(ctx, []model.Item{it}, owned)
	if err != nil {
		return item.DetailItemOutput{}, err
	}

	return item.DetailItemOutput{ItemView: views[0]}, nil
}

// List returns every item owned by the caller with comments and bookings.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (item.ListItemsOutput, error) {
	if err := uc.ensureUser(ctx, sc.UserID); err != nil {
		return item.ListItemsOutput{}, err
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	views, err := uc.buildViews(ctx, items, items)
	if err != nil {
		return item.ListItemsOutput{}, err
	}

	return item.ListItemsOutput{Items: views}, nil
}

// buildViews attaches comments to items and last/next approved bookings to the owned subset.
func (uc *implUseCase) buildViews(ctx context.Context, items, owned []model.Item) ([]item.ItemView, error) {
	views := make([]item.ItemView, len(items))
	for i, it := range items {
		views[i] = item.ItemView{Item: it, Comments: []model.Comment{}}
	}
	if len(items) == 0 {
		return views, nil
	}

	comments, err := uc.repo.ListComments(ctx, itemIDs(items))
	if err != nil {
		uc.l.Errorf(ctx, "uc.buildViews ListComments: %v", err)
		return nil, err
	}
	commentsByItem := make(map[int64][]model.Comment, len(items))
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	bookingsByItem := make(map[int64][]model.Booking, len(owned))
	if len(owned) > 0 {
		bookings, err := uc.bookingRepo.ListBookings(ctx, bookingRepo.ListBookingsOptions{
			ItemIDs: itemIDs(owned),
			Status:  model.BookingStatusApproved,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.buildViews ListBookings: %v", err)
			return nil, err
		}
		for _, b := range bookings {
			bookingsByItem[b.Item.ID] = append(bookingsByItem[b.Item.ID], b)
		}
	}

	now := uc.now()
	for i := range views {
		id := views[i].Item.ID
		if cs, ok := commentsByItem[id]; ok {
			views[i].Comments = cs
		}
		views[i].LastBooking, views[i].NextBooking = lastAndNext(bookingsByItem[id], now)
	}
	return views, nil
}
