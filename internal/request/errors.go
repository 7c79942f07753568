package request

import "errors"

var (
	ErrUserNotFound    = errors.New("user was not found")
	ErrRequestNotFound = errors.New("request was not found")
	ErrInvalidPaging   = errors.New("'from' and 'size' should be positive")
)
