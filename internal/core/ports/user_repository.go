package ports

import (
	"context"

	"github.com/learnhub/learnhub-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
//
// List and FindByID project the authentication sub-document out; FindByEmail
// and FindBySessionToken load it, since their callers need the credential
// material (registration existence checks, login verification, and the
// per-request session lookup).
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindBySessionToken(ctx context.Context, token string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUsername(ctx context.Context, id, username string) (*domain.User, error)
	SetSessionToken(ctx context.Context, id, token string) error
	ClearSessionToken(ctx context.Context, id string) error
	SetRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
