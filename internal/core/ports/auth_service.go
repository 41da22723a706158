package ports

import (
	"context"

	"github.com/learnhub/learnhub-api/internal/core/domain"
)

// AuthService implements registration and the session-token lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies the credentials and rotates the session token. The
	// returned token is the sole bearer credential for the account until the
	// next login or logout.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, userID string) error
}
