package usecase

import (
	"context"
	"errors"

	"shareit/internal/user"
	repo "shareit/internal/user/repository"
)

// Detail retrieves a single User by ID. Returns ErrUserNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (user.DetailUserOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return user.DetailUserOutput{}, err
	}
	if u.ID == 0 {
		return user.DetailUserOutput{}, user.ErrUserNotFound
	}
	return user.DetailUserOutput{User: u}, nil
}

// Update merges the provided fields onto the stored User:
//   - Name:  replaced when non-nil
//   - Email: replaced when non-nil, must stay unique
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateUserInput) (user.UpdateUserOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneUser: %v", err)
		return user.UpdateUserOutput{}, err
	}
	if existing.ID == 0 {
		return user.UpdateUserOutput{}, user.ErrUserNotFound
	}

	if input.Email != nil && *input.Email != existing.Email {
		other, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: *input.Email})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneUser email: %v", err)
			return user.UpdateUserOutput{}, err
		}
		if other.ID != 0 && other.ID != existing.ID {
			return user.UpdateUserOutput{}, user.ErrEmailExists
		}
	}

	u, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:    existing.ID,
		Name:  coalesce(input.Name, existing.Name),
		Email: coalesce(input.Email, existing.Email),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return user.UpdateUserOutput{}, user.ErrEmailExists
		}
		uc.l.Errorf(ctx, "uc.Update UpdateUser: %v", err)
		return user.UpdateUserOutput{}, err
	}
	if u.ID == 0 {
		return user.UpdateUserOutput{}, user.ErrUserNotFound
	}
	return user.UpdateUserOutput{User: u}, nil
}

// Delete removes a User by ID and verifies it is gone.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneUser: %v", err)
		return err
	}
	if existing.ID == 0 {
		return user.ErrUserNotFound
	}
	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteUser: %v", err)
		return err
	}

	after, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneUser after: %v", err)
		return err
	}
	if after.ID != 0 {
		return repo.ErrFailedToDelete
	}
	return nil
}
