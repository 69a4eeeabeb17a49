package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the lifetime of a login session token.
const DefaultAccessTokenTTL = time.Hour

// Claims are the access-token claims. The subject is the user id; the rest
// describes the principal at the time the token was minted.
type Claims struct {
	jwt.RegisteredClaims

	Email    string   `json:"email,omitempty"`
	Username string   `json:"username,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	Status   string   `json:"status,omitempty"`
}

// Principal is the identity embedded into a token.
type Principal struct {
	ID       string
	Email    string
	Username string
	Roles    []string
	Status   string
}

// NewAccessClaims builds claims for p valid from now for ttl.
func NewAccessClaims(p Principal, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Email:    p.Email,
		Username: p.Username,
		Roles:    slices.Clone(p.Roles),
		Status:   p.Status,
	}
}

// Principal returns the identity carried by the claims.
func (c *Claims) Principal() Principal {
	return Principal{
		ID:       c.Subject,
		Email:    c.Email,
		Username: c.Username,
		Roles:    slices.Clone(c.Roles),
		Status:   c.Status,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim, which also
// keeps two tokens minted in the same second for the same user distinct.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryWithLeeway(0)
}

// ValidateExpiryWithLeeway adds a small grace period for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}

// ExpiresAtTime returns exp as a time, or the zero time when absent.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}
