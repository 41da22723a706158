package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/learnhub-api/internal/api/middleware"
	"github.com/learnhub/learnhub-api/internal/core/domain"
)

// ctxIdentity returns the authenticated user attached by the Authenticate
// middleware. Routes behind the auth chain always have one; its absence means
// the chain was misconfigured, so fail closed.
func ctxIdentity(c echo.Context) (*domain.User, error) {
	identity, ok := middleware.Identity(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return identity, nil
}

// ctxActor returns the hex id of the authenticated user, for audit trails.
func ctxActor(c echo.Context) string {
	identity, ok := middleware.Identity(c)
	if !ok {
		return ""
	}
	return identity.ID.Hex()
}
