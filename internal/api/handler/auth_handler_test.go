package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/learnhub/learnhub-api/internal/core/domain"
)

// setIdentity plants a user under the key the auth middleware uses.
func setIdentity(c echo.Context, user *domain.User) {
	c.Set("identity", user)
}

type stubAuthService struct {
	registerFn func(ctx context.Context, username, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	logoutFn   func(ctx context.Context, userID string) error
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, userID string) error {
	return s.logoutFn(ctx, userID)
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, username, email, password string) (*domain.User, error) {
			if username != "alice" || email != "alice@example.com" || password != "hunter22" {
				t.Fatalf("unexpected args: %s %s", username, email)
			}
			return &domain.User{ID: primitive.NewObjectID(), Username: username, Email: email}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"hunter22"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response, got %v", resp)
	}
	if user["username"] != "alice" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["authentication"]; leaked {
		t.Fatalf("authentication material leaked into response")
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (*domain.User, error) {
			t.Fatal("service must not be reached without all fields")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	bodies := []string{
		`{"email":"alice@example.com","password":"hunter22"}`,
		`{"username":"alice","password":"hunter22"}`,
		`{"username":"alice","email":"alice@example.com"}`,
	}
	for _, body := range bodies {
		c, _ := newJSONContext(http.MethodPost, "/auth/register", body)
		if err := handler.Register(c); !errors.Is(err, domain.ErrMissingFields) {
			t.Fatalf("%s: expected ErrMissingFields, got %v", body, err)
		}
	}
}

func TestAuthHandler_Register_AcceptsAnyNonEmptyCredentials(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, username, email, password string) (*domain.User, error) {
			return &domain.User{ID: primitive.NewObjectID(), Username: username, Email: email}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"username":"dave","email":"dave","password":"pw"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(http.MethodPost, "/auth/register",
		`{"username":"bob","email":"bob@example.com","password":"hunter22"}`)

	if err := handler.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Username: "carol"}
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "session-token", user, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"email":"carol@example.com","password":"hunter22"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "session-token" {
		t.Fatalf("expected token in response, got %v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(http.MethodPost, "/auth/login",
		`{"email":"carol@example.com","password":"wrong"}`)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID()}
	var cleared string
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, userID string) error {
			cleared = userID
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")
	setIdentity(c, user)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cleared != user.ID.Hex() {
		t.Fatalf("expected logout for %s, got %s", user.ID.Hex(), cleared)
	}
}
