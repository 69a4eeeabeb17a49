package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrAccountDisabled    = errors.New("account_disabled")
	ErrTokenRevoked       = errors.New("token_revoked")
	ErrInvalidToken       = errors.New("invalid_token")
)

type SessionService struct {
	Store     store.Store
	Signer    jwtx.Signer
	Verifier  jwtx.Verifier
	Issuer    string
	AccessTTL time.Duration
	Now       func() time.Time
}

// AccessToken is a freshly issued bearer token.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// Login checks the credentials and issues an access token. Unknown emails
// and wrong passwords are indistinguishable to the caller. A banned account
// is only reported once the password has been verified.
func (s *SessionService) Login(ctx context.Context, email, password string) (AccessToken, domain.User, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return AccessToken{}, domain.User{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login for unknown email")
			return AccessToken{}, domain.User{}, ErrInvalidCredentials
		}
		return AccessToken{}, domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Info("login password mismatch", slog.String("user_id", user.ID))
			return AccessToken{}, domain.User{}, ErrInvalidCredentials
		}
		return AccessToken{}, domain.User{}, err
	}

	if user.Banned() {
		l.Info("login for banned account", slog.String("user_id", user.ID))
		return AccessToken{}, domain.User{}, ErrAccountDisabled
	}

	tok, err := s.issue(user)
	if err != nil {
		return AccessToken{}, domain.User{}, err
	}
	return tok, user, nil
}

func (s *SessionService) issue(u domain.User) (AccessToken, error) {
	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(jwtx.Principal{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Roles:    u.Roles,
		Status:   u.Status,
	}, s.Issuer, ttl, s.now())

	signed, err := s.Signer.Sign(claims)
	if err != nil {
		return AccessToken{}, fmt.Errorf("sign access token: %w", err)
	}
	return AccessToken{Token: signed, ExpiresAt: claims.ExpiresAtTime()}, nil
}

// Authenticate resolves a bearer token to the live user record. The checks
// run in order: revocation, signature and expiry, then account status.
func (s *SessionService) Authenticate(ctx context.Context, rawToken string) (domain.User, error) {
	token := httpx.CanonicalToken(rawToken)
	if token == "" {
		return domain.User{}, ErrInvalidToken
	}

	revoked, err := s.Store.RevokedTokens().IsTokenRevoked(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		return domain.User{}, err
	}
	if revoked {
		return domain.User{}, ErrTokenRevoked
	}

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrAccountDisabled
		}
		return domain.User{}, err
	}
	if user.Banned() {
		return domain.User{}, ErrAccountDisabled
	}

	return user, nil
}

// Logout revokes the token for as long as it could still verify. Revoking an
// already revoked token succeeds.
func (s *SessionService) Logout(ctx context.Context, rawToken string) error {
	token := httpx.CanonicalToken(rawToken)

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	// The entry must outlive every instant at which the token still
	// verifies, so it is kept until exp plus the verifier's leeway.
	err = s.Store.RevokedTokens().RevokeToken(ctx, domain.RevokedToken{
		TokenHash: cryptox.FingerprintToken(token),
		UserID:    claims.Subject,
		RevokedAt: s.now(),
		ExpiresAt: claims.ExpiresAtTime().Add(s.Verifier.Leeway()),
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("user logged out", "user_id", claims.Subject)
	return nil
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
