package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/learnhub/learnhub-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes. Lookups that miss
//     answer 400: the ids come from the client, so a miss is treated as a bad
//     request rather than a routing 404.
//   - Logs unexpected errors internally; in production the real cause never
//     reaches the client.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c, production)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, production bool) (int, string) {
	// Echo's own errors (bind failures, 404 from router, explicit HTTPErrors).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, "User not found"
	case errors.Is(err, domain.ErrCourseNotFound):
		return http.StatusBadRequest, "Course not found"
	case errors.Is(err, domain.ErrLessonNotFound):
		return http.StatusBadRequest, "Lesson not found"
	case errors.Is(err, domain.ErrResourceNotFound):
		return http.StatusBadRequest, "Resource not found"
	case errors.Is(err, domain.ErrTagNotFound):
		return http.StatusBadRequest, "Tag not found"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusBadRequest, "Product not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "User already exists"
	case errors.Is(err, domain.ErrProductExists):
		return http.StatusBadRequest, "Product already exists"
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "Missing fields"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	if production {
		return http.StatusInternalServerError, "internal server error"
	}
	return http.StatusInternalServerError, err.Error()
}
