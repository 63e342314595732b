package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/jallichakravarthi/mern-watchlist/domain"
	"github.com/redis/go-redis/v9"
)

// RedisLimiterImpl implements domain.RateLimiter using a fixed window
// counter in Redis: INCR per key, EXPIRE on first hit in a window.
type RedisLimiterImpl struct {
	client *redis.Client
	prefix string
	window time.Duration
	max    int64
}

// NewRedisLimiter creates a new fixed-window rate limiter
func NewRedisLimiter(client *redis.Client, prefix string, window time.Duration, max int64) domain.RateLimiter {
	return &RedisLimiterImpl{
		client: client,
		prefix: prefix,
		window: window,
		max:    max,
	}
}

// Allow implements domain.RateLimiter. It returns false with the time
// remaining in the current window once max attempts are used up.
func (l *RedisLimiterImpl) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	redisKey := fmt.Sprintf("%s:%s", l.prefix, key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to increment attempt counter: %w", err)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("failed to set window expiry: %w", err)
		}
	}

	if count > l.max {
		ttl, err := l.client.TTL(ctx, redisKey).Result()
		if err != nil {
			return false, l.window, nil
		}
		return false, ttl, nil
	}

	return true, 0, nil
}
