package http

import (
	"errors"
	"net/http"

	"shareit/internal/item"
	pkgErrors "shareit/pkg/errors"
)

var errInvalidID = errors.New("invalid item id")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrUserNotFound),
		errors.Is(err, item.ErrItemNotFound),
		errors.Is(err, item.ErrRequestNotFound),
		errors.Is(err, item.ErrNotOwner):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, item.ErrNeverRented),
		errors.Is(err, item.ErrInvalidPaging):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
