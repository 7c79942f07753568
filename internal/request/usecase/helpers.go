package usecase

import (
	"context"

	itemRepo "shareit/internal/item/repository"
	"shareit/internal/model"
	"shareit/internal/request"
	userRepo "shareit/internal/user/repository"
)

func (uc *implUseCase) ensureUser(ctx context.Context, id int64) error {
	u, err := uc.userRepo.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ensureUser GetOneUser: %v", err)
		return err
	}
	if u.ID == 0 {
		return request.ErrUserNotFound
	}
	return nil
}

// withItems looks up the items listed in response to each request.
func (uc *implUseCase) withItems(ctx context.Context, requests []model.ItemRequest) ([]request.RequestView, error) {
	views := make([]request.RequestView, len(requests))
	if len(requests) == 0 {
		return views, nil
	}

	ids := make([]int64, len(requests))
	for i, rq := range requests {
		ids[i] = rq.ID
	}
	items, err := uc.itemRepo.ListItems(ctx, itemRepo.ListItemsOptions{RequestIDs: ids})
	if err != nil {
		uc.l.Errorf(ctx, "uc.withItems ListItems: %v", err)
		return nil, err
	}

	byRequest := make(map[int64][]model.Item, len(requests))
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}
	for i, rq := range requests {
		views[i] = request.RequestView{Request: rq, Items: byRequest[rq.ID]}
		if views[i].Items == nil {
			views[i].Items = []model.Item{}
		}
	}
	return views, nil
}
