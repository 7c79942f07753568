package http

import (
	"errors"
	"net/http"

	"shareit/internal/booking"
	pkgErrors "shareit/pkg/errors"
)

var (
	errInvalidID       = errors.New("invalid booking id")
	errInvalidApproved = errors.New("query parameter 'approved' must be true or false")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Ownership violations are client errors, not 403.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, booking.ErrUserNotFound),
		errors.Is(err, booking.ErrItemNotFound),
		errors.Is(err, booking.ErrBookingNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrItemUnavailable),
		errors.Is(err, booking.ErrInvalidDateRange),
		errors.Is(err, booking.ErrAlreadyApproved),
		errors.Is(err, booking.ErrRejectNotOwner),
		errors.Is(err, booking.ErrInvalidPaging),
		errors.Is(err, booking.ErrBookerIsOwner),
		errors.Is(err, booking.ErrApproveNotOwner):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default: // includes ErrUnknownState
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
