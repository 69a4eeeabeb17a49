package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

var (
	ErrUserExists      = errors.New("username or email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidRole     = errors.New("invalid role")
	ErrMissingUserData = errors.New("username, email, role and password are required")
)

type UserService struct {
	Store store.Store
	Now   func() time.Time
}

// Registration is the input of Register.
type Registration struct {
	Username string
	Email    string
	Roles    []string
	Password string
}

// Register creates an active account with a hashed password.
func (s *UserService) Register(ctx context.Context, r Registration) (domain.User, error) {
	username := strings.TrimSpace(r.Username)
	email := strings.TrimSpace(r.Email)
	if username == "" || email == "" || len(r.Roles) == 0 || r.Password == "" {
		return domain.User{}, ErrMissingUserData
	}

	roles := make([]string, 0, len(r.Roles))
	for _, role := range r.Roles {
		if !domain.IsKnownRole(role) {
			return domain.User{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
		}
		if !slices.Contains(roles, role) {
			roles = append(roles, role)
		}
	}

	hash, err := cryptox.HashPassword(r.Password)
	if err != nil {
		return domain.User{}, err
	}

	now := s.now()
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Username:     username,
		Email:        email,
		Roles:        roles,
		PasswordHash: hash,
		Status:       domain.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUserExists
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", u.ID, "roles", roles)
	return u, nil
}

// ListUsers returns every account.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// Disable bans an account. Banned users cannot log in and their existing
// tokens stop working.
func (s *UserService) Disable(ctx context.Context, userID string) (domain.User, error) {
	return s.setStatus(ctx, userID, domain.UserBanned)
}

// Enable reactivates an account.
func (s *UserService) Enable(ctx context.Context, userID string) (domain.User, error) {
	return s.setStatus(ctx, userID, domain.UserActive)
}

func (s *UserService) setStatus(ctx context.Context, userID, status string) (domain.User, error) {
	u, err := s.Store.Users().SetUserStatus(ctx, userID, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user status changed", "target_user_id", userID, "status", status)
	return u, nil
}

func (s *UserService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
