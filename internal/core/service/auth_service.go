package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/learnhub/learnhub-api/internal/api/metrics"
	"github.com/learnhub/learnhub-api/internal/core/domain"
	"github.com/learnhub/learnhub-api/internal/core/ports"
	"github.com/learnhub/learnhub-api/internal/pkg/credentials"
)

// AuthService implements registration and the session-token lifecycle.
type AuthService struct {
	users  ports.UserRepository
	hasher *credentials.Hasher
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher *credentials.Hasher, audit ports.AuditRecorder, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, audit: audit, logger: logger}
}

// Register creates an account. The password is salted and hashed before
// anything is persisted; the plaintext never leaves this method.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	salt := credentials.NewSalt()
	user := &domain.User{
		Username: username,
		Email:    email,
		Authentication: domain.Authentication{
			Password: s.hasher.Hash(salt, password),
			Salt:     salt,
			Role:     domain.RoleUser,
		},
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID.Hex()).Str("username", created.Username).Msg("user registered")
	s.audit.Record(domain.AuditEvent{
		Actor:      created.ID.Hex(),
		Action:     domain.AuditCreated,
		EntityType: "user",
		EntityID:   created.ID.Hex(),
		At:         time.Now().UTC(),
	})
	return created, nil
}

// Login verifies the credentials and rotates the session token. The old
// token stops working the moment the new one is stored.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(user.Authentication.Salt, password, user.Authentication.Password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.users.SetSessionToken(ctx, user.ID.Hex(), token); err != nil {
		return "", nil, err
	}
	metrics.SessionsIssuedTotal.Inc()

	s.logger.Info().Str("user_id", user.ID.Hex()).Msg("session issued")
	s.audit.Record(domain.AuditEvent{
		Actor:      user.ID.Hex(),
		Action:     domain.AuditLogin,
		EntityType: "user",
		EntityID:   user.ID.Hex(),
		At:         time.Now().UTC(),
	})
	return token, user, nil
}

// Logout clears the session token, invalidating the bearer credential.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.users.ClearSessionToken(ctx, userID); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEvent{
		Actor:      userID,
		Action:     domain.AuditLogout,
		EntityType: "user",
		EntityID:   userID,
		At:         time.Now().UTC(),
	})
	return nil
}
