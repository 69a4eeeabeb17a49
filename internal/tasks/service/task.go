package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskNotApproved = errors.New("task has not been approved for deletion")
	ErrNotTaskOwner    = errors.New("task belongs to another user")
	ErrEmptyUpdate     = errors.New("no fields to update")
	ErrInvalidTask     = errors.New("invalid task fields")
)

var (
	priorities = []string{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh}
	statuses   = []string{domain.TaskPending, domain.TaskInProgress, domain.TaskCompleted}
)

// Actor is the authenticated user performing a task operation.
type Actor struct {
	UserID   string
	Username string
	Roles    []string
}

// NewTask is the input of Create.
type NewTask struct {
	Task     string
	Priority string
	Deadline string
}

type TaskService struct {
	Store store.Store
	Now   func() time.Time
}

// List returns the tasks the actor's roles allow them to see, newest first.
func (s *TaskService) List(ctx context.Context, a Actor) ([]domain.Task, error) {
	f := domain.TaskFilterFor(a.Roles, a.Username, s.now())
	return s.Store.Tasks().ListTasks(ctx, f)
}

// Create stores a pending, unapproved task owned by the actor.
func (s *TaskService) Create(ctx context.Context, a Actor, in NewTask) (domain.Task, error) {
	title := strings.TrimSpace(in.Task)
	deadline := strings.TrimSpace(in.Deadline)
	if title == "" || deadline == "" || !slices.Contains(priorities, in.Priority) {
		return domain.Task{}, ErrInvalidTask
	}

	now := s.now()
	t := domain.Task{
		ID:               idx.NewAt(now).String(),
		Task:             title,
		Priority:         in.Priority,
		Status:           domain.TaskPending,
		Deadline:         deadline,
		ApprovedToDelete: domain.DeletionNotApproved,
		UserID:           a.UserID,
		Username:         a.Username,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.Store.Tasks().CreateTask(ctx, t); err != nil {
		return domain.Task{}, err
	}

	slogx.FromContext(ctx).Info("task created", "task_id", t.ID)
	return t, nil
}

// Update applies a partial change to one of the actor's tasks. Status may
// move freely between the known values.
func (s *TaskService) Update(ctx context.Context, a Actor, id string, p domain.TaskPatch) (domain.Task, error) {
	if p.Empty() {
		return domain.Task{}, ErrEmptyUpdate
	}
	if p.Task != nil && strings.TrimSpace(*p.Task) == "" ||
		p.Deadline != nil && strings.TrimSpace(*p.Deadline) == "" ||
		p.Priority != nil && !slices.Contains(priorities, *p.Priority) ||
		p.Status != nil && !slices.Contains(statuses, *p.Status) {
		return domain.Task{}, ErrInvalidTask
	}

	var updated domain.Task
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Tasks().GetTaskByID(ctx, id)
		if err != nil {
			return mapTaskNotFound(err)
		}
		if !t.OwnedBy(a.UserID) {
			return ErrNotTaskOwner
		}

		updated, err = tx.Tasks().UpdateTask(ctx, id, p)
		return mapTaskNotFound(err)
	})
	if err != nil {
		return domain.Task{}, err
	}

	slogx.FromContext(ctx).Info("task updated", "task_id", id)
	return updated, nil
}

// Approve marks a task as deletable. It is idempotent.
func (s *TaskService) Approve(ctx context.Context, id string) (domain.Task, error) {
	t, err := s.Store.Tasks().ApproveTaskDeletion(ctx, id)
	if err != nil {
		return domain.Task{}, mapTaskNotFound(err)
	}

	slogx.FromContext(ctx).Info("task approved for deletion", "task_id", id)
	return t, nil
}

// Delete removes one of the actor's tasks once a manager has approved it.
// An unapproved task is left untouched.
func (s *TaskService) Delete(ctx context.Context, a Actor, id string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Tasks().GetTaskByID(ctx, id)
		if err != nil {
			return mapTaskNotFound(err)
		}
		if !t.OwnedBy(a.UserID) {
			return ErrNotTaskOwner
		}
		if !t.ApprovedForDeletion() {
			return ErrTaskNotApproved
		}
		return mapTaskNotFound(tx.Tasks().DeleteApprovedTask(ctx, id))
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("task deleted", "task_id", id)
	return nil
}

func (s *TaskService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func mapTaskNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}
