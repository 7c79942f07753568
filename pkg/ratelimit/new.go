package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Options selects and sizes a limiter.
type Options struct {
	Enabled bool
	PerMin  int

	// RedisAddr switches to the shared Redis window when set.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// New builds the limiter described by opt. A disabled limiter is nil.
// The returned close func releases the Redis client, if any.
func New(ctx context.Context, opt Options) (Limiter, func() error, error) {
	noop := func() error { return nil }
	if !opt.Enabled {
		return nil, noop, nil
	}
	if opt.PerMin <= 0 {
		return nil, noop, fmt.Errorf("ratelimit: per-minute limit must be positive")
	}
	if opt.RedisAddr == "" {
		return NewMemory(opt.PerMin), noop, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     opt.RedisAddr,
		Password: opt.RedisPassword,
		DB:       opt.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, noop, fmt.Errorf("ratelimit: redis ping: %w", err)
	}
	return NewRedis(rdb, opt.PerMin), rdb.Close, nil
}
