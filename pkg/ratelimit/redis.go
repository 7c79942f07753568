package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisLimiter is a fixed one-minute window shared by every gateway instance.
type redisLimiter struct {
	rdb    redis.Cmdable
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRedis creates a limiter backed by INCR/EXPIRE on rdb.
func NewRedis(rdb redis.Cmdable, requestsPerMin int) Limiter {
	return &redisLimiter{
		rdb:    rdb,
		limit:  int64(requestsPerMin),
		window: time.Minute,
		now:    time.Now,
	}
}

func (l *redisLimiter) key(key string) string {
	bucket := l.now().Unix() / int64(l.window/time.Second)
	return fmt.Sprintf("shareit:ratelimit:%s:%d", key, bucket)
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("ratelimit: redis: %w", err)
	}
	return incr.Val() <= l.limit, nil
}
