package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/learnhub-api/internal/core/domain"
	"github.com/learnhub/learnhub-api/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, username, email string) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Username: username,
		Email:    email,
		Authentication: domain.Authentication{
			Role: domain.RoleUser,
		},
	})
	require.NoError(t, err)
	return user
}

func TestUserService_UpdateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, ports.NoopRecorder{}, zerolog.Nop())

	user := seedUser(t, repo, "alice", "alice@example.com")

	updated, err := svc.UpdateUsername(context.Background(), user.ID.Hex(), user.ID.Hex(), "alice-renamed")
	require.NoError(t, err)
	require.Equal(t, "alice-renamed", updated.Username)

	_, err = svc.UpdateUsername(context.Background(), user.ID.Hex(), user.ID.Hex(), "   ")
	require.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestUserService_UpdateUsername_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), ports.NoopRecorder{}, zerolog.Nop())

	_, err := svc.UpdateUsername(context.Background(), "actor", "missing", "name")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Delete_ReturnsDeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, ports.NoopRecorder{}, zerolog.Nop())

	user := seedUser(t, repo, "bob", "bob@example.com")

	deleted, err := svc.Delete(context.Background(), user.ID.Hex(), user.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, user.ID, deleted.ID)

	_, err = svc.Get(context.Background(), user.ID.Hex())
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Promote(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, ports.NoopRecorder{}, zerolog.Nop())

	user := seedUser(t, repo, "carol", "carol@example.com")
	require.False(t, user.IsAdmin())

	promoted, err := svc.Promote(context.Background(), "admin-actor", user.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, user.ID, promoted.ID)
	require.Equal(t, domain.RoleAdmin, repo.users[user.ID.Hex()].Authentication.Role)
}
