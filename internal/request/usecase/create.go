package usecase

import (
	"context"

	"shareit/internal/model"
	"shareit/internal/request"
	repo "shareit/internal/request/repository"
)

// Create posts a new item request on behalf of the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input request.CreateRequestInput) (request.CreateRequestOutput, error) {
	if err := uc.ensureUser(ctx, sc.UserID); err != nil {
		return request.CreateRequestOutput{}, err
	}

	rq, err := uc.repo.CreateRequest(ctx, repo.CreateRequestOptions{
		Description: input.Description,
		RequestorID: sc.UserID,
		Created:     uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateRequest: %v", err)
		return request.CreateRequestOutput{}, err
	}

	return request.CreateRequestOutput{RequestView: request.RequestView{Request: rq, Items: []model.Item{}}}, nil
}
