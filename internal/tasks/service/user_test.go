package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("creates an active account with a hashed password", func(t *testing.T) {
		u, err := f.users.Register(ctx, Registration{
			Username: " alice ",
			Email:    "alice@example.com",
			Roles:    []string{domain.RoleMember, domain.RoleMember},
			Password: "s3cret",
		})
		require.NoError(t, err)
		require.NotEmpty(t, u.ID)
		require.Equal(t, "alice", u.Username)
		require.Equal(t, []string{domain.RoleMember}, u.Roles)
		require.Equal(t, domain.UserActive, u.Status)
		require.NotEqual(t, "s3cret", u.PasswordHash)

		got, err := f.store.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, got.Email)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := f.users.Register(ctx, Registration{
			Username: "alice2",
			Email:    "ALICE@example.com",
			Roles:    []string{domain.RoleMember},
			Password: "x",
		})
		require.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := f.users.Register(ctx, Registration{
			Username: "bob",
			Email:    "bob@example.com",
			Roles:    []string{"owner"},
			Password: "x",
		})
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		_, err := f.users.Register(ctx, Registration{Username: "carol", Email: "carol@example.com"})
		require.ErrorIs(t, err, ErrMissingUserData)
	})
}

func TestDisableEnable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.register(t, "dave", domain.RoleMember)

	banned, err := f.users.Disable(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, domain.UserBanned, banned.Status)

	// Disabling twice is fine.
	_, err = f.users.Disable(ctx, u.ID)
	require.NoError(t, err)

	active, err := f.users.Enable(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, domain.UserActive, active.Status)

	_, err = f.users.Disable(ctx, "missing")
	require.ErrorIs(t, err, ErrUserNotFound)

	all, err := f.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}
