package gateway

import (
	"net/http"

	pkgErrors "shareit/pkg/errors"
)

var (
	errMalformedBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "malformed request body")
	errInvalidPaging = pkgErrors.NewHTTPError(http.StatusBadRequest, "'from' must be non-negative and 'size' positive")
	errApproved      = pkgErrors.NewHTTPError(http.StatusBadRequest, "query parameter 'approved' must be true or false")
	errUpstream      = pkgErrors.NewHTTPError(http.StatusBadGateway, "server unavailable")
)

func errUnknownState(raw string) error {
	return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Unknown state: "+raw)
}
