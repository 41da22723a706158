package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnhub/learnhub-api/internal/core/domain"
	"github.com/learnhub/learnhub-api/internal/core/ports"
)

// UserService implements account management.
type UserService struct {
	users  ports.UserRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *UserService {
	return &UserService{users: users, audit: audit, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) UpdateUsername(ctx context.Context, actor, id, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrMissingFields
	}

	updated, err := s.users.UpdateUsername(ctx, id, username)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEvent{
		Actor:      actor,
		Action:     domain.AuditUpdated,
		EntityType: "user",
		EntityID:   id,
		At:         time.Now().UTC(),
	})
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, actor, id string) (*domain.User, error) {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Str("actor", actor).Msg("user deleted")
	s.audit.Record(domain.AuditEvent{
		Actor:      actor,
		Action:     domain.AuditDeleted,
		EntityType: "user",
		EntityID:   id,
		At:         time.Now().UTC(),
	})
	return deleted, nil
}

// Promote grants the admin role to the target user.
func (s *UserService) Promote(ctx context.Context, actor, id string) (*domain.User, error) {
	promoted, err := s.users.SetRole(ctx, id, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Str("actor", actor).Msg("user promoted to admin")
	s.audit.Record(domain.AuditEvent{
		Actor:      actor,
		Action:     domain.AuditPromoted,
		EntityType: "user",
		EntityID:   id,
		At:         time.Now().UTC(),
	})
	return promoted, nil
}
