package tasksdk

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// Known role names.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMember  = "member"
)

// Known task priorities and statuses.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Account statuses.
const (
	AccountActive = "active"
	AccountBanned = "banned"
)

// ============================================================================
// Generic Responses
// ============================================================================

// MessageResponse is the body of responses that only carry a message.
type MessageResponse struct {
	Msg string `json:"msg" example:"Logout Successful"`
}

// ============================================================================
// User Types
// ============================================================================

// RoleList is a list of role names. On the wire it accepts either a single
// string ("member") or an array (["manager","member"]).
type RoleList []string

func (r *RoleList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = nil
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*r = nil
			return nil
		}
		*r = RoleList{s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return errors.New("role must be a string or an array of strings")
	}
	*r = list
	return nil
}

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Username string   `json:"username" example:"alice"`
	Email    string   `json:"email" example:"alice@example.com"`
	Role     RoleList `json:"role" swaggertype:"array,string" example:"member"`
	Password string   `json:"password" example:"correct horse battery"`
}

// LoginRequest exchanges credentials for an access token.
type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"correct horse battery"`
}

// LoginResponse carries the bearer token issued at login.
type LoginResponse struct {
	Msg         string `json:"msg" example:"User logged in successfully!"`
	AccessToken string `json:"accessToken"`
}

// User is the public view of an account. The password hash is never part of it.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	Status    string    `json:"status" example:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	Msg  string `json:"msg,omitempty"`
	Item User   `json:"item"`
}

// ============================================================================
// Task Types
// ============================================================================

// Task is the public view of a task.
type Task struct {
	ID               string    `json:"id"`
	Task             string    `json:"task"`
	Priority         string    `json:"priority" example:"high"`
	Status           string    `json:"status" example:"pending"`
	Deadline         string    `json:"deadline" example:"2025-01-31"`
	ApprovedToDelete string    `json:"approvedToDelete" example:"no"`
	UserID           string    `json:"user_id"`
	Username         string    `json:"username"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// TaskResponse wraps a single task.
type TaskResponse struct {
	Msg  string `json:"msg"`
	Item Task   `json:"item"`
}

// CreateTaskRequest creates a task owned by the caller.
type CreateTaskRequest struct {
	Task     string `json:"task" example:"write report"`
	Priority string `json:"priority" example:"medium"`
	Deadline string `json:"deadline" example:"2025-01-31"`
}

// UpdateTaskRequest changes the provided fields of a task; nil fields are
// left untouched.
type UpdateTaskRequest struct {
	Task     *string `json:"task,omitempty"`
	Priority *string `json:"priority,omitempty"`
	Status   *string `json:"status,omitempty"`
	Deadline *string `json:"deadline,omitempty"`
}

// Empty reports whether no field is set.
func (u UpdateTaskRequest) Empty() bool {
	return u.Task == nil && u.Priority == nil && u.Status == nil && u.Deadline == nil
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
