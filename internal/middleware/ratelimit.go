package middleware

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// RateLimit rejects clients that exceed the configured request rate.
// Limiter failures let the request through.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		ok, err := m.limiter.Allow(ctx, c.ClientIP())
		if err != nil {
			m.l.Warnf(ctx, "middleware.RateLimit: %v", err)
			c.Next()
			return
		}
		if !ok {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
