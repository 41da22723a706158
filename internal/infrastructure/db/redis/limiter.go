package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter maintains fixed-window request counters in Redis.
// Key format: ratelimit:<caller>
type Limiter struct {
	client *redis.Client
	window time.Duration
}

// NewLimiter creates a Limiter whose counters expire after window.
func NewLimiter(client *redis.Client, window time.Duration) *Limiter {
	return &Limiter{client: client, window: window}
}

// Hit increments the caller's counter and returns its value within the
// current window. The expiry is only set when the key is created, so the
// window is anchored at the first request.
func (l *Limiter) Hit(ctx context.Context, caller string) (int64, error) {
	key := l.key(caller)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit hit: %w", err)
	}
	return incr.Val(), nil
}

func (l *Limiter) key(caller string) string {
	return "ratelimit:" + caller
}
