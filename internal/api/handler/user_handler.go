package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/learnhub-api/internal/core/ports"
)

// UserHandler handles HTTP requests for account management.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateUsernameRequest struct {
	Username string `json:"username" validate:"required"`
}

// List returns every registered user.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     SessionToken
// @Success      200  {object}  map[string][]domain.User
// @Failure      401  {object}  messageResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "users", users)
}

// Get returns one user by id. Public.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]domain.User
// @Failure      400  {object}  messageResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "user", user)
}

// UpdateUsername changes the display name of the account. Only the account
// owner (or the application owner) reaches this handler.
//
// @Summary      Update a user's username
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        id    path      string                 true  "User id"
// @Param        body  body      updateUsernameRequest  true  "New username"
// @Success      200   {object}  map[string]domain.User
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateUsername(c echo.Context) error {
	var req updateUsernameRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	user, err := h.userService.UpdateUsername(c.Request().Context(), ctxActor(c), c.Param("id"), req.Username)
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "user", user)
}

// Delete removes the account and returns it as it was.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     SessionToken
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]domain.User
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	user, err := h.userService.Delete(c.Request().Context(), ctxActor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "user", user)
}

// Promote grants the admin role to the target user. Only admins reach
// this handler.
//
// @Summary      Promote a user to admin
// @Tags         users
// @Produce      json
// @Security     SessionToken
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]domain.User
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /users/{id}/admin [post]
func (h *UserHandler) Promote(c echo.Context) error {
	user, err := h.userService.Promote(c.Request().Context(), ctxActor(c), c.Param("id"))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "user", user)
}
