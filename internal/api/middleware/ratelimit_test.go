package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubCounter struct {
	count int64
	err   error
}

func (s *stubCounter) Hit(context.Context, string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.count++
	return s.count, nil
}

func newLimitContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRateLimit_AllowsUnderLimit(t *testing.T) {
	counter := &stubCounter{}
	mw := RateLimit(counter, 2)

	for i := 0; i < 2; i++ {
		c, rec := newLimitContext()
		if err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c); err != nil {
			t.Fatalf("request %d rejected: %v", i+1, err)
		}
		if rec.Header().Get("X-RateLimit-Remaining") == "" {
			t.Fatalf("remaining header not set")
		}
	}
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	counter := &stubCounter{count: 2}
	mw := RateLimit(counter, 2)

	c, _ := newLimitContext()
	err := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	counter := &stubCounter{err: errors.New("redis down")}
	mw := RateLimit(counter, 2)

	c, _ := newLimitContext()
	called := false
	if err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c); err != nil {
		t.Fatalf("expected pass-through on counter failure, got %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}
