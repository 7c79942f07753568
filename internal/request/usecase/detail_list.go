package usecase

import (
	"context"

	"shareit/internal/model"
	"shareit/internal/request"
	repo "shareit/internal/request/repository"
)

// Detail returns any request by id with its items.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (request.DetailRequestOutput, error) {
	if err := uc.ensureUser(ctx, sc.UserID); err != nil {
		return request.DetailRequestOutput{}, err
	}

	rq, err := uc.repo.GetOneRequest(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneRequest: %v", err)
		return request.DetailRequestOutput{}, err
	}
	if rq.ID == 0 {
		return request.DetailRequestOutput{}, request.ErrRequestNotFound
	}

	views, err := uc.withItems(ctx, []model.ItemRequest{rq})
	if err != nil {
		return request.DetailRequestOutput{}, err
	}
	return request.DetailRequestOutput{RequestView: views[0]}, nil
}

// ListOwn returns the caller's requests, newest first.
func (uc *implUseCase) ListOwn(ctx context.Context, sc model.Scope) (request.ListRequestsOutput, error) {
	if err := uc.ensureUser(ctx, sc.UserID); err != nil {
		return request.ListRequestsOutput{}, err
	}

	requests, err := uc.repo.ListRequests(ctx, repo.ListRequestsOptions{RequestorID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOwn ListRequests: %v", err)
		return request.ListRequestsOutput{}, err
	}

	views, err := uc.withItems(ctx, requests)
	if err != nil {
		return request.ListRequestsOutput{}, err
	}
	return request.ListRequestsOutput{Requests: views}, nil
}

// ListAll pages through other users' requests, newest first.
func (uc *implUseCase) ListAll(ctx context.Context, sc model.Scope, input request.ListAllInput) (request.ListRequestsOutput, error) {
	if err := uc.ensureUser(ctx, sc.UserID); err != nil {
		return request.ListRequestsOutput{}, err
	}
	if err := input.Paging.Validate(); err != nil {
		return request.ListRequestsOutput{}, request.ErrInvalidPaging
	}

	requests, err := uc.repo.ListRequests(ctx, repo.ListRequestsOptions{
		ExcludeRequestorID: sc.UserID,
		Limit:              input.Paging.Limit(),
		Offset:             input.Paging.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAll ListRequests: %v", err)
		return request.ListRequestsOutput{}, err
	}

	views, err := uc.withItems(ctx, requests)
	if err != nil {
		return request.ListRequestsOutput{}, err
	}
	return request.ListRequestsOutput{Requests: views}, nil
}
