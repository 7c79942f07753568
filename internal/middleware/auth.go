package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/response"
)

// UserIDHeader carries the caller identity on every scoped request.
const UserIDHeader = "X-Sharer-User-Id"

var (
	errMissingUserID = pkgErrors.NewHTTPError(http.StatusBadRequest, "missing header "+UserIDHeader)
	errInvalidUserID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid header "+UserIDHeader)
)

// ParseUserID reads the caller id from the identity header.
func ParseUserID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if raw == "" {
		return 0, errMissingUserID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errInvalidUserID
	}
	return id, nil
}

// Auth stores the caller scope taken from the identity header on the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := ParseUserID(c.Request)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: id})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
