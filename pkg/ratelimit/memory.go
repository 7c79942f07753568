package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	memoryMaxKeys = 10000
	memoryKeyTTL  = 5 * time.Minute
)

// memoryLimiter keeps a token bucket per key; idle keys expire from the LRU.
type memoryLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// NewMemory creates an in-process limiter allowing requestsPerMin per key.
func NewMemory(requestsPerMin int) Limiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &memoryLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](memoryMaxKeys, nil, memoryKeyTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	return l.limiterFor(key).Allow(), nil
}

// limiterFor returns the bucket for key, creating it once under the lock.
func (l *memoryLimiter) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(key, limiter)
	}
	return limiter
}
