package usecase

import (
	"context"
	"strings"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Search finds available items by name or description. Blank text matches nothing.
func (uc *implUseCase) Search(ctx context.Context, input item.SearchItemsInput) (item.SearchItemsOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return item.SearchItemsOutput{Items: []model.Item{}}, nil
	}
	if err := input.Paging.Validate(); err != nil {
		return item.SearchItemsOutput{}, item.ErrInvalidPaging
	}

	items, err := uc.repo.SearchItems(ctx, repo.SearchItemsOptions{
		Text:   input.Text,
		Limit:  input.Paging.Limit(),
		Offset: input.Paging.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search SearchItems: %v", err)
		return item.SearchItemsOutput{}, err
	}
	return item.SearchItemsOutput{Items: items}, nil
}
