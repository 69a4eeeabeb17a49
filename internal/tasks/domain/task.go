package domain

import (
	"slices"
	"time"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	TaskPending    = "pending"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
)

// Values of Task.ApprovedToDelete.
const (
	DeletionNotApproved = "no"
	DeletionApproved    = "yes"
)

// ManagerWindow is how far back a manager can see tasks.
const ManagerWindow = 24 * time.Hour

type Task struct {
	ID               string
	Task             string // Title
	Priority         string
	Status           string
	Deadline         string // Free-form, not parsed
	ApprovedToDelete string
	UserID           string // Creator, taken from the authenticated identity
	Username         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (t Task) ApprovedForDeletion() bool { return t.ApprovedToDelete == DeletionApproved }

func (t Task) OwnedBy(userID string) bool { return t.UserID == userID }

// TaskPatch holds the fields of a partial update; nil means unchanged.
type TaskPatch struct {
	Task     *string
	Priority *string
	Status   *string
	Deadline *string
}

func (p TaskPatch) Empty() bool {
	return p.Task == nil && p.Priority == nil && p.Status == nil && p.Deadline == nil
}

// TaskFilter restricts a task listing. Zero fields do not filter.
type TaskFilter struct {
	Username     string
	CreatedAfter time.Time
}

// TaskFilterFor returns the listing scope for a requester. A member sees
// only their own tasks; otherwise a manager sees tasks created within
// ManagerWindow of now; anyone else sees everything. The member rule wins
// when a user holds both roles.
func TaskFilterFor(roles []string, username string, now time.Time) TaskFilter {
	switch {
	case slices.Contains(roles, RoleMember):
		return TaskFilter{Username: username}
	case slices.Contains(roles, RoleManager):
		return TaskFilter{CreatedAfter: now.Add(-ManagerWindow)}
	default:
		return TaskFilter{}
	}
}
