package user

import "errors"

var (
	ErrUserNotFound = errors.New("user was not found")
	ErrEmailExists  = errors.New("user with this email already exists")
)
