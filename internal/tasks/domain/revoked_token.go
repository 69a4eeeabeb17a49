package domain

import "time"

// RevokedToken is an access token invalidated by logout. Only a fingerprint
// of the canonical token is kept.
type RevokedToken struct {
	TokenHash string
	UserID    string
	RevokedAt time.Time
	ExpiresAt time.Time // The token's own exp; the row is useless after it
}
