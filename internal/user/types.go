package user

import "shareit/internal/model"

// --- UseCase Inputs ---

type CreateUserInput struct {
	Name  string
	Email string
}

// UpdateUserInput is a partial update: a nil field keeps the stored value.
type UpdateUserInput struct {
	ID    int64
	Name  *string
	Email *string
}

// --- UseCase Outputs ---

type CreateUserOutput struct {
	User model.User
}

type ListUsersOutput struct {
	Users []model.User
}

type DetailUserOutput struct {
	User model.User
}

type UpdateUserOutput struct {
	User model.User
}
