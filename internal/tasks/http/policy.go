package http

import (
	"fmt"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
)

// routePolicies lists every protected route with the role sets that may call
// it. An empty list means any authenticated user.
var routePolicies = map[string][]httpx.RoleSet{
	"POST /users/logout":                {},
	"PATCH /users/disable/{id}":         {httpx.Any(domain.RoleAdmin)},
	"PATCH /users/enable/{id}":          {httpx.Any(domain.RoleAdmin)},
	"GET /tasks":                        {httpx.Any(domain.RoleAdmin, domain.RoleManager, domain.RoleMember)},
	"POST /tasks/create":                {httpx.Any(domain.RoleMember)},
	"PATCH /tasks/update/{id}":          {httpx.Any(domain.RoleMember)},
	"PATCH /tasks/approveToDelete/{id}": {httpx.Any(domain.RoleManager)},
	"DELETE /tasks/delete/{id}":         {httpx.Any(domain.RoleMember)},
}

// policyFor returns the role sets for a protected route. It panics when the
// route has no entry so a missing policy is caught at startup.
func policyFor(pattern string) []httpx.RoleSet {
	sets, ok := routePolicies[pattern]
	if !ok {
		panic(fmt.Sprintf("http: no role policy for protected route %q", pattern))
	}
	return sets
}
