package middleware

import (
	"shareit/pkg/log"
	"shareit/pkg/ratelimit"
)

// Middleware bundles the gin middlewares shared by the API server and the gateway.
type Middleware struct {
	l       log.Logger
	limiter ratelimit.Limiter
}

// New creates a Middleware. limiter may be nil, in which case RateLimit is a pass-through.
func New(l log.Logger, limiter ratelimit.Limiter) Middleware {
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
