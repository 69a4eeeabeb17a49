package httpx

import (
	"net/http"
	"strings"
)

// RoleSet is satisfied when the caller holds any one of its roles.
type RoleSet []string

func (s RoleSet) String() string { return strings.Join(s, "|") }

// Any builds a RoleSet from roles.
func Any(roles ...string) RoleSet { return RoleSet(roles) }

const (
	MsgNoIdentity         = "Unauthorized- roles not matching"
	MsgInsufficientAccess = "Insufficient privileges. You do not have access to perform this task"
)

// Allowed reports whether id satisfies at least one of sets.
func Allowed(id Identity, sets ...RoleSet) bool {
	for _, set := range sets {
		for _, role := range set {
			if id.HasRole(role) {
				return true
			}
		}
	}
	return false
}

// RequireRoles admits the request when the identity in context satisfies any
// of the given role sets. It must run after authentication.
func RequireRoles(sets ...RoleSet) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				WriteJSON(w, http.StatusUnauthorized, map[string]string{"msg": MsgNoIdentity})
				return
			}

			if !Allowed(id, sets...) {
				WriteJSON(w, http.StatusForbidden, map[string]string{"msg": MsgInsufficientAccess})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
