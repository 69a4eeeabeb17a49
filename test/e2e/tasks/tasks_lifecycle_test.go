//go:build e2e

package tasks_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

// TestTaskLifecycle walks through register, login, create, approve and delete.
func TestTaskLifecycle(t *testing.T) {
	baseURL, cleanup := setupTasksContainer(t)
	defer cleanup()

	client := tasksdk.NewClient(baseURL)
	ctx := t.Context()

	_, member := registerAndLogin(t, client, "alice", tasksdk.RoleMember)
	_, manager := registerAndLogin(t, client, "bob", tasksdk.RoleManager)

	task, err := member.CreateTask(ctx, tasksdk.CreateTaskRequest{
		Task:     "write report",
		Priority: tasksdk.PriorityHigh,
		Deadline: "2025-12-31",
	})
	require.NoError(t, err)
	require.Equal(t, tasksdk.StatusPending, task.Status)
	require.Equal(t, "no", task.ApprovedToDelete)

	status := tasksdk.StatusCompleted
	updated, err := member.UpdateTask(ctx, task.ID, tasksdk.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	require.Equal(t, tasksdk.StatusCompleted, updated.Status)
	require.Equal(t, "write report", updated.Task)

	// Deleting before approval fails and leaves the task in place.
	err = member.DeleteTask(ctx, task.ID)
	apiErr := requireStatus(t, err, http.StatusBadRequest)
	require.Equal(t, "This task has not been approved by the manager to delete.", apiErr.Msg)

	tasks, err := member.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	for range 2 {
		approved, err := manager.ApproveTaskDeletion(ctx, task.ID)
		require.NoError(t, err)
		require.Equal(t, "yes", approved.ApprovedToDelete)
	}

	require.NoError(t, member.DeleteTask(ctx, task.ID))

	tasks, err = member.ListTasks(ctx)
	require.NoError(t, err)
	require.Empty(t, tasks)

	err = member.DeleteTask(ctx, task.ID)
	requireStatus(t, err, http.StatusInternalServerError)
}

// TestListScoping checks that members only see their own tasks while
// managers and admins see everyone's recent tasks.
func TestListScoping(t *testing.T) {
	baseURL, cleanup := setupTasksContainer(t)
	defer cleanup()

	client := tasksdk.NewClient(baseURL)
	ctx := t.Context()

	_, alice := registerAndLogin(t, client, "alice", tasksdk.RoleMember)
	_, carol := registerAndLogin(t, client, "carol", tasksdk.RoleMember)
	_, manager := registerAndLogin(t, client, "bob", tasksdk.RoleManager)
	_, admin := registerAndLogin(t, client, "root", tasksdk.RoleAdmin)

	for _, s := range []*tasksdk.Session{alice, carol} {
		_, err := s.CreateTask(ctx, tasksdk.CreateTaskRequest{Task: "t", Priority: tasksdk.PriorityLow, Deadline: "soon"})
		require.NoError(t, err)
	}

	mine, err := alice.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "alice", mine[0].Username)

	all, err := manager.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	all, err = admin.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
