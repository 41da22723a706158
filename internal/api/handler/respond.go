package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// messageResponse is the envelope for operations that only confirm an action.
type messageResponse struct {
	Message string `json:"message"`
}

// message writes a {"message": ...} confirmation body.
func message(c echo.Context, code int, msg string) error {
	return c.JSON(code, messageResponse{Message: msg})
}

// entity writes the single-key envelope every read and write responds with:
// the payload is wrapped under its entity name, e.g. {"course": {...}} or
// {"users": [...]}.
func entity(c echo.Context, code int, key string, value any) error {
	return c.JSON(code, map[string]any{key: value})
}

// badRequest is the shortcut for malformed payloads.
func badRequest(msg string) error {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}
