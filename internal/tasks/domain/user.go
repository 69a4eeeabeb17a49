package domain

import (
	"slices"
	"time"
)

// Roles a user can hold.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMember  = "member"
)

// Account statuses.
const (
	UserActive = "active"
	UserBanned = "banned"
)

// KnownRoles lists every valid role name.
var KnownRoles = []string{RoleAdmin, RoleManager, RoleMember}

type User struct {
	ID           string
	Username     string
	Email        string
	Roles        []string // Parsed from space-delimited storage
	PasswordHash string   // argon2id PHC string
	Status       string   // UserActive or UserBanned
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) HasRole(role string) bool { return slices.Contains(u.Roles, role) }

func (u User) Banned() bool { return u.Status == UserBanned }

// IsKnownRole reports whether role is one of KnownRoles.
func IsKnownRole(role string) bool { return slices.Contains(KnownRoles, role) }
