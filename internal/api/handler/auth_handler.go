package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/learnhub-api/internal/core/domain"
	"github.com/learnhub/learnhub-api/internal/core/ports"
)

// AuthHandler handles account registration and session lifecycle.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Registration and login accept any non-empty values; the only field
// contract is presence, reported as "Missing fields".
type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  map[string]domain.User
// @Failure      400   {object}  messageResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrMissingFields
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return entity(c, http.StatusCreated, "user", user)
}

// Login verifies credentials and issues a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrMissingFields
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// Logout clears the caller's session token, invalidating it everywhere.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     SessionToken
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), identity.ID.Hex()); err != nil {
		return err
	}

	return message(c, http.StatusOK, "Logged out")
}
