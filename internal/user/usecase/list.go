package usecase

import (
	"context"

	"shareit/internal/user"
)

// List returns every registered User.
func (uc *implUseCase) List(ctx context.Context) (user.ListUsersOutput, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListUsers: %v", err)
		return user.ListUsersOutput{}, err
	}
	return user.ListUsersOutput{Users: users}, nil
}
