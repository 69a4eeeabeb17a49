package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte(strings.Repeat("s", jwtx.MinSecretLength))

func newHS256(t *testing.T) *jwtx.HS256 {
	t.Helper()
	h, err := jwtx.NewHS256(testSecret, "taskboard")
	require.NoError(t, err)
	return h
}

func TestHS256SignVerify(t *testing.T) {
	h := newHS256(t)
	require.Equal(t, "HS256", h.Alg())

	claims := jwtx.NewAccessClaims(jwtx.Principal{
		ID:       "user-1",
		Email:    "bob@example.com",
		Username: "bob",
		Roles:    []string{"member"},
		Status:   "active",
	}, "taskboard", time.Hour, time.Now())

	tok, err := h.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(tok, ".")))

	got, err := h.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, []string{"member"}, got.Roles)
	require.Equal(t, "active", got.Status)
}

func TestHS256RejectsWeakSecret(t *testing.T) {
	_, err := jwtx.NewHS256([]byte("short"), "")
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestHS256Verify_Failures(t *testing.T) {
	h := newHS256(t)
	now := time.Now()

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewHS256([]byte(strings.Repeat("x", 40)), "taskboard")
		require.NoError(t, err)
		tok, err := other.Sign(jwtx.NewAccessClaims(jwtx.Principal{ID: "u"}, "taskboard", time.Hour, now))
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := h.Verify("not-a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := h.Sign(jwtx.NewAccessClaims(jwtx.Principal{ID: "u"}, "taskboard", time.Minute, now.Add(-time.Hour)))
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("no expiry", func(t *testing.T) {
		c := jwtx.NewAccessClaims(jwtx.Principal{ID: "u"}, "taskboard", time.Hour, now)
		c.ExpiresAt = nil
		tok, err := h.Sign(c)
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrNoExpiry)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		tok, err := h.Sign(jwtx.NewAccessClaims(jwtx.Principal{ID: "u"}, "elsewhere", time.Hour, now))
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("alg none", func(t *testing.T) {
		c := jwtx.NewAccessClaims(jwtx.Principal{ID: "u"}, "taskboard", time.Hour, now)
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = h.Verify(tok)
		require.Error(t, err)
	})
}

func TestHS256Leeway(t *testing.T) {
	h := newHS256(t)
	require.Zero(t, h.Leeway())

	tok, err := h.Sign(jwtx.NewAccessClaims(jwtx.Principal{ID: "u"}, "taskboard", time.Minute, time.Now().Add(-time.Minute-2*time.Second)))
	require.NoError(t, err)

	_, err = h.Verify(tok)
	require.ErrorIs(t, err, jwtx.ErrExpired)

	h.WithLeeway(5 * time.Second)
	require.Equal(t, 5*time.Second, h.Leeway())
	_, err = h.Verify(tok)
	require.NoError(t, err)
}
