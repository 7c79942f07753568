package http

import (
	"errors"
	"net/http"

	"shareit/internal/user"
	pkgErrors "shareit/pkg/errors"
)

var errInvalidID = errors.New("invalid user id")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, user.ErrEmailExists):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
