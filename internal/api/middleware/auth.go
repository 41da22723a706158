package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/learnhub-api/internal/api/metrics"
	"github.com/learnhub/learnhub-api/internal/core/domain"
)

// identityKey is the echo context key under which Authenticate stores the
// resolved user.
const identityKey = "identity"

// unauthorizedMessage is the body of every 401 the chain produces.
const unauthorizedMessage = "Unauthorized"

// SessionResolver resolves a session token to its bearer. Implemented by the
// user repository.
type SessionResolver interface {
	FindBySessionToken(ctx context.Context, token string) (*domain.User, error)
}

// Authenticate resolves the session token on every request and attaches the
// bearer's identity to the context. The token is read from the Authorization
// header as a raw value; a "Bearer " prefix is tolerated and stripped. A
// missing or unknown token denies with 401 before any handler runs.
func Authenticate(sessions SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				metrics.AuthAttemptsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
			}

			user, err := sessions.FindBySessionToken(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthAttemptsTotal.WithLabelValues("unknown_token").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage)
				}
				return err
			}

			metrics.AuthAttemptsTotal.WithLabelValues("ok").Inc()
			c.Set(identityKey, user)
			return next(c)
		}
	}
}

// Identity returns the user attached by Authenticate, if any.
func Identity(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(identityKey).(*domain.User)
	return user, ok && user != nil
}

// bearerToken extracts the raw token from an Authorization header value,
// stripping an optional scheme prefix.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) >= 7 && strings.EqualFold(header[:7], "bearer ") {
		header = strings.TrimSpace(header[7:])
	}
	return header
}
