package usecase

import (
	"context"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Update merges the provided fields onto an item owned by the caller:
//   - Name, Description, Available: replaced when non-nil
//   - owner and request link never change
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	if err := uc.ensureUser(ctx, sc.UserID); err != nil {
		return item.UpdateItemOutput{}, err
	}

	existing, err := uc.repo.GetOneItem(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if existing.ID == 0 {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}
	if !existing.IsOwnedBy(sc.UserID) {
		return item.UpdateItemOutput{}, item.ErrNotOwner
	}

	it, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          existing.ID,
		Name:        coalesce(input.Name, existing.Name),
		Description: coalesce(input.Description, existing.Description),
		Available:   coalesce(input.Available, existing.Available),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if it.ID == 0 {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}
	return item.UpdateItemOutput{Item: it}, nil
}

// Delete removes an item and verifies it is gone.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneItem: %v", err)
		return err
	}
	if existing.ID == 0 {
		return item.ErrItemNotFound
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}

	after, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneItem after: %v", err)
		return err
	}
	if after.ID != 0 {
		return repo.ErrFailedToDelete
	}
	return nil
}
