package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/learnhub-api/internal/api/metrics"
)

// HitCounter counts requests per caller within the current window.
// Implemented by the redis limiter.
type HitCounter interface {
	Hit(ctx context.Context, caller string) (int64, error)
}

// RateLimit enforces a fixed-window per-IP request limit. When the counter
// backend is unavailable the request is allowed through.
func RateLimit(counter HitCounter, limit int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			count, err := counter.Hit(c.Request().Context(), c.RealIP())
			if err != nil {
				return next(c)
			}

			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(limit) {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}
			return next(c)
		}
	}
}
