package jwtx

import (
	"errors"
	"time"
)

// Signer turns claims into a signed compact JWT.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
	// Leeway is how long past exp a token still verifies.
	Leeway() time.Duration
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrWeakSecret  = errors.New("jwtx: secret too short")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNoExpiry    = errors.New("jwtx: token has no exp claim")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)
