package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store/drivers/sqlite/gen"
)

type tasksRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	err := r.q.CreateTask(ctx, gen.CreateTaskParams{
		ID:               t.ID,
		Task:             t.Task,
		Priority:         t.Priority,
		Status:           t.Status,
		Deadline:         t.Deadline,
		ApprovedToDelete: t.ApprovedToDelete,
		UserID:           t.UserID,
		Username:         t.Username,
		CreatedAt:        toMillis(t.CreatedAt),
		UpdatedAt:        toMillis(t.UpdatedAt),
	})
	return mapConstraint(err)
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	row, err := r.q.GetTaskByID(ctx, id)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return mapTask(row), nil
}

func (r *tasksRepo) ListTasks(ctx context.Context, f domain.TaskFilter) ([]domain.Task, error) {
	var (
		rows []gen.Task
		err  error
	)
	switch {
	case f.Username != "":
		rows, err = r.q.ListTasksByUsername(ctx, f.Username)
	case !f.CreatedAfter.IsZero():
		rows, err = r.q.ListTasksCreatedAfter(ctx, toMillis(f.CreatedAfter))
	default:
		rows, err = r.q.ListTasks(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapTask(row))
	}
	return out, nil
}

func (r *tasksRepo) UpdateTask(ctx context.Context, id string, p domain.TaskPatch) (domain.Task, error) {
	row, err := r.q.UpdateTask(ctx, gen.UpdateTaskParams{
		Task:      mapOptionalString(p.Task),
		Priority:  mapOptionalString(p.Priority),
		Status:    mapOptionalString(p.Status),
		Deadline:  mapOptionalString(p.Deadline),
		UpdatedAt: toMillis(r.now()),
		ID:        id,
	})
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return mapTask(row), nil
}

func (r *tasksRepo) ApproveTaskDeletion(ctx context.Context, id string) (domain.Task, error) {
	row, err := r.q.ApproveTaskDeletion(ctx, gen.ApproveTaskDeletionParams{
		UpdatedAt: toMillis(r.now()),
		ID:        id,
	})
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return mapTask(row), nil
}

func (r *tasksRepo) DeleteApprovedTask(ctx context.Context, id string) error {
	n, err := r.q.DeleteApprovedTask(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
