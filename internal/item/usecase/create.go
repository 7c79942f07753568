package usecase

import (
	"context"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Create lists a new item for the caller, optionally linked to an item request.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input item.CreateItemInput) (item.CreateItemOutput, error) {
	if err := uc.ensureUser(ctx, sc.UserID); err != nil {
		return item.CreateItemOutput{}, err
	}

	if input.RequestID != nil {
		rq, err := uc.requestRepo.GetOneRequest(ctx, *input.RequestID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create GetOneRequest: %v", err)
			return item.CreateItemOutput{}, err
		}
		if rq.ID == 0 {
			return item.CreateItemOutput{}, item.ErrRequestNotFound
		}
	}

	it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        input.Name,
		Description: input.Description,
		Available:   input.Available,
		OwnerID:     sc.UserID,
		RequestID:   input.RequestID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	return item.CreateItemOutput{Item: it}, nil
}
