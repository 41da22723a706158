// Package redis holds the process-wide Redis client and the fixed-window
// rate-limit counters built on it. Redis is a soft dependency here: the
// limiter fails open when it is unreachable, so only startup and the
// readiness probe treat a dead Redis as an error.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout bounds the startup connectivity check.
const pingTimeout = 5 * time.Second

// Connect opens the client backing the rate-limit counters and verifies it
// answers before the server starts taking traffic. The client is opened once
// at startup and closed on process exit.
func Connect(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
