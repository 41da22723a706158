package ports

import (
	"context"

	"github.com/learnhub/learnhub-api/internal/core/domain"
)

// UserService implements account management on top of UserRepository.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateUsername(ctx context.Context, actor, id, username string) (*domain.User, error)
	Delete(ctx context.Context, actor, id string) (*domain.User, error)
	// Promote grants the admin role to the target user.
	Promote(ctx context.Context, actor, id string) (*domain.User, error)
}
