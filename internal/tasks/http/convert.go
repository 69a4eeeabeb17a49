package http

import (
	"context"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

func toUser(u domain.User) tasksdk.User {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return tasksdk.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Roles:     roles,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toTask(t domain.Task) tasksdk.Task {
	return tasksdk.Task{
		ID:               t.ID,
		Task:             t.Task,
		Priority:         t.Priority,
		Status:           t.Status,
		Deadline:         t.Deadline,
		ApprovedToDelete: t.ApprovedToDelete,
		UserID:           t.UserID,
		Username:         t.Username,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// actorFrom builds the service actor from the authenticated identity.
func actorFrom(ctx context.Context) (service.Actor, bool) {
	id, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		return service.Actor{}, false
	}
	return service.Actor{UserID: id.UserID, Username: id.Username, Roles: id.Roles}, true
}
