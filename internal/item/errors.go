package item

import "errors"

var (
	ErrUserNotFound    = errors.New("user was not found")
	ErrItemNotFound    = errors.New("item was not found")
	ErrRequestNotFound = errors.New("request was not found")
	ErrNotOwner        = errors.New("item for this user was not found")
	ErrNeverRented     = errors.New("this user never rented this item")
	ErrInvalidPaging   = errors.New("'from' and 'size' should be positive")
)
