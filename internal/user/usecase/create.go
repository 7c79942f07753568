package usecase

import (
	"context"
	"errors"

	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

// Create registers a new User after checking that the email is free.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateUserInput) (user.CreateUserOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneUser: %v", err)
		return user.CreateUserOutput{}, err
	}
	if existing.ID != 0 {
		return user.CreateUserOutput{}, user.ErrEmailExists
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return user.CreateUserOutput{}, user.ErrEmailExists
		}
		uc.l.Errorf(ctx, "uc.Create CreateUser: %v", err)
		return user.CreateUserOutput{}, err
	}

	return user.CreateUserOutput{User: u}, nil
}
