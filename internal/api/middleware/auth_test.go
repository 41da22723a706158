package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/learnhub/learnhub-api/internal/core/domain"
)

type stubSessions struct {
	users map[string]*domain.User
}

func (s *stubSessions) FindBySessionToken(_ context.Context, token string) (*domain.User, error) {
	if u, ok := s.users[token]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuthenticate_AttachesIdentity(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Username: "alice"}
	sessions := &stubSessions{users: map[string]*domain.User{"tok-1": user}}
	c, _ := newAuthContext("tok-1")

	called := false
	handler := Authenticate(sessions)(func(c echo.Context) error {
		called = true
		identity, ok := Identity(c)
		if !ok || identity.ID != user.ID {
			t.Fatalf("identity not attached: %v %v", identity, ok)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestAuthenticate_StripsBearerPrefix(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID()}
	sessions := &stubSessions{users: map[string]*domain.User{"tok-1": user}}
	c, _ := newAuthContext("Bearer tok-1")

	handler := Authenticate(sessions)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthenticate_MissingToken(t *testing.T) {
	sessions := &stubSessions{users: map[string]*domain.User{}}
	c, _ := newAuthContext("")

	handler := Authenticate(sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if code := httpCode(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthenticate_UnknownToken(t *testing.T) {
	sessions := &stubSessions{users: map[string]*domain.User{}}
	c, _ := newAuthContext("tok-unknown")

	handler := Authenticate(sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if code := httpCode(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}
