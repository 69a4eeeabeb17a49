package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and so that a transaction can only be started from the root.
type Store interface {
	Users() Users
	Tasks() Tasks
	RevokedTokens() RevokedTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers returns every user in registration order.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// SetUserStatus changes status, bumps updated_at and returns the user.
	SetUserStatus(ctx context.Context, id, status string) (domain.User, error)
}

type Tasks interface {
	CreateTask(ctx context.Context, t domain.Task) error

	GetTaskByID(ctx context.Context, id string) (domain.Task, error)

	// ListTasks returns the tasks matching f, newest first.
	ListTasks(ctx context.Context, f domain.TaskFilter) ([]domain.Task, error)

	// UpdateTask applies the non-nil fields of p and returns the result.
	UpdateTask(ctx context.Context, id string, p domain.TaskPatch) (domain.Task, error)

	// ApproveTaskDeletion sets approved_to_delete to "yes" in a single
	// statement and returns the task. Approving twice is not an error.
	ApproveTaskDeletion(ctx context.Context, id string) (domain.Task, error)

	// DeleteApprovedTask removes the task only if it has been approved.
	// Returns ErrNotFound if no approved task with that id exists.
	DeleteApprovedTask(ctx context.Context, id string) error
}

type RevokedTokens interface {
	// RevokeToken records a logged-out token. Revoking the same token twice
	// is not an error.
	RevokeToken(ctx context.Context, t domain.RevokedToken) error

	// IsTokenRevoked reports whether the fingerprint has been revoked.
	IsTokenRevoked(ctx context.Context, tokenHash string) (bool, error)

	// DeleteExpiredRevokedTokens is housekeeping: it drops entries whose
	// token expired at or before now and returns how many were removed.
	DeleteExpiredRevokedTokens(ctx context.Context, now time.Time) (int64, error)
}
