package http

import (
	"errors"
	"net/http"

	"shareit/internal/request"
	pkgErrors "shareit/pkg/errors"
)

var errInvalidID = errors.New("invalid request id")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, request.ErrUserNotFound),
		errors.Is(err, request.ErrRequestNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, request.ErrInvalidPaging):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
