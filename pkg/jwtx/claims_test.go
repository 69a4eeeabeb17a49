package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "taskboard",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("taskboard"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		err := c.ValidateIssuer("someone-else")
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid token", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			NotBefore: jwt.NewNumericDate(now.Add(-time.Minute)),
		}}
		require.NoError(t, c.ValidateExpiry())
	})

	t.Run("expired", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		}}
		require.ErrorIs(t, c.ValidateExpiry(), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			NotBefore: jwt.NewNumericDate(now.Add(time.Hour)),
		}}
		require.ErrorIs(t, c.ValidateExpiry(), jwtx.ErrNotYetValid)
	})

	t.Run("leeway absorbs skew", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-2 * time.Second)),
		}}
		require.NoError(t, c.ValidateExpiryWithLeeway(10*time.Second))
	})
}

func TestNewAccessClaims(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	p := jwtx.Principal{
		ID:       "01J0000000000000000000000",
		Email:    "ann@example.com",
		Username: "ann",
		Roles:    []string{"manager"},
		Status:   "active",
	}

	c := jwtx.NewAccessClaims(p, "taskboard", time.Hour, now)
	require.Equal(t, p.ID, c.Subject)
	require.Equal(t, "taskboard", c.Issuer)
	require.Equal(t, now.Add(time.Hour), c.ExpiresAtTime())
	require.NotEmpty(t, c.ID)
	require.Equal(t, p, c.Principal())

	// Roles must not alias the caller's slice.
	p.Roles[0] = "admin"
	require.Equal(t, []string{"manager"}, c.Roles)
}

func TestNewJTIUnique(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		j := jwtx.NewJTI()
		require.False(t, seen[j])
		seen[j] = true
	}
}
