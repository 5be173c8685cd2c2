package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLimit  = 10
	defaultWindow = time.Minute
)

// FixedWindowLimiter counts requests per caller key in fixed time windows.
// Key format: ratelimit:<key>:<window_number>. The INCR/EXPIRE pair runs in
// one pipeline so concurrent requests never observe a counter without a TTL.
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewFixedWindowLimiter creates a limiter allowing limit requests per window.
// Non-positive arguments fall back to 10 requests per minute.
func NewFixedWindowLimiter(client *redis.Client, limit int, window time.Duration) *FixedWindowLimiter {
	if limit <= 0 {
		limit = defaultLimit
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &FixedWindowLimiter{client: client, limit: int64(limit), window: window}
}

// Allow reports whether the caller identified by key may proceed within the
// current window.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := time.Now().UnixNano() / l.window.Nanoseconds()
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, bucket)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("ratelimit incr: %w", err)
	}

	return incr.Val() <= l.limit, nil
}
