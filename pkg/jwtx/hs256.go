package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the smallest HMAC secret accepted, matching the SHA-256
// block output size.
const MinSecretLength = 32

// HS256 signs and verifies tokens with a shared HMAC-SHA256 secret.
type HS256 struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewHS256 returns an HS256 signer/verifier. Tokens it verifies must carry
// issuer when issuer is non-empty.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	return &HS256{secret: append([]byte(nil), secret...), issuer: issuer}, nil
}

// WithLeeway allows a small clock skew when validating exp and nbf.
func (h *HS256) WithLeeway(d time.Duration) *HS256 {
	h.leeway = d
	return h
}

func (h *HS256) Leeway() time.Duration { return h.leeway }

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (h *HS256) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.secret)
}

// Verify validates the signature, issuer and expiry of tokenStr. Tokens
// without an exp claim are rejected.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		default:
			return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, errors.New("jwtx: invalid token claims")
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if claims.ExpiresAt == nil {
		return Claims{}, ErrNoExpiry
	}
	if err := claims.ValidateExpiryWithLeeway(h.leeway); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}
