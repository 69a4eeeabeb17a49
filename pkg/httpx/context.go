package httpx

import (
	"context"
	"net/http"
	"slices"
	"strings"
)

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

// Identity is the authenticated principal of a request.
type Identity struct {
	UserID   string
	Username string
	Email    string
	Roles    []string
}

// HasRole reports whether the identity holds role.
func (i Identity) HasRole(role string) bool {
	return slices.Contains(i.Roles, role)
}

// WithIdentity stores id in ctx for downstream handlers.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityFromContext returns the identity placed by the authentication
// middleware, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(Identity)
	return id, ok
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. It returns false when the header is absent, uses another scheme or
// carries an empty token.
func BearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return "", false
	}
	raw := CanonicalToken(authz)
	return raw, raw != ""
}

// CanonicalToken normalises a bearer credential so that the same token always
// compares equal: the scheme prefix is removed and whitespace trimmed.
func CanonicalToken(s string) string {
	s = strings.TrimLeft(s, " \t")
	s = strings.TrimPrefix(s, "Bearer ")
	return strings.TrimSpace(s)
}
