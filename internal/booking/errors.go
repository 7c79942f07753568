package booking

import "errors"

var (
	ErrUserNotFound     = errors.New("user was not found")
	ErrItemNotFound     = errors.New("item was not found")
	ErrBookingNotFound  = errors.New("booking was not found")
	ErrItemUnavailable  = errors.New("item is unavailable")
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrBookerIsOwner    = errors.New("booker is the owner of the item")
	ErrApproveNotOwner  = errors.New("this user is not the owner of the item")
	ErrRejectNotOwner   = errors.New("only the owner of the item can reject a booking")
	ErrAlreadyApproved  = errors.New("booking is already approved")
	ErrUnknownState     = errors.New("Unknown state: UNSUPPORTED_STATUS")
	ErrInvalidPaging    = errors.New("'from' and 'size' should be positive")
)
