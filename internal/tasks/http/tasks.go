package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// TasksHandler serves the task endpoints. Every route runs behind the
// authentication and role middleware.
type TasksHandler struct {
	TaskService *service.TaskService
}

// writeTaskError maps task service errors to responses. fallback is the
// message used for anything unexpected, missing tasks included.
func writeTaskError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotTaskOwner):
		tasksdk.ErrNotOwner.WriteError(w)
	case errors.Is(err, service.ErrTaskNotApproved):
		tasksdk.ErrNotApproved.WriteError(w)
	case errors.Is(err, service.ErrEmptyUpdate):
		tasksdk.NewAPIError(http.StatusBadRequest, tasksdk.MsgUpdateFieldsRequired).WriteError(w)
	case errors.Is(err, service.ErrInvalidTask):
		tasksdk.ErrInvalidBody.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error(fallback, "task_id", r.PathValue("id"), "error", err)
		tasksdk.NewAPIError(http.StatusInternalServerError, fallback).WriteError(w)
	}
}

// HandleList handles GET /tasks
//
//	@Summary		List Tasks
//	@Description	Members see their own tasks, managers see tasks created in the last 24 hours and admins see every task.
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string	true	"Bearer token"
//	@Success		200				{array}		tasksdk.Task
//	@Failure		401				{object}	tasksdk.APIError	"msg"
//	@Failure		403				{object}	tasksdk.APIError	"msg"
//	@Failure		500				{object}	tasksdk.APIError	"msg"
//	@Router			/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		tasksdk.ErrMissingToken.WriteError(w)
		return
	}

	tasks, err := h.TaskService.List(r.Context(), actor)
	if err != nil {
		writeTaskError(w, r, err, "Could not retrieve tasks")
		return
	}

	out := make([]tasksdk.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTask(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /tasks/create
//
//	@Summary		Create Task
//	@Description	Creates a pending task owned by the caller.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token of a member"
//	@Param			request			body		tasksdk.CreateTaskRequest	true	"Task"
//	@Success		200				{object}	tasksdk.TaskResponse		"msg, item"
//	@Failure		400				{object}	tasksdk.APIError			"msg, details"
//	@Failure		401				{object}	tasksdk.APIError			"msg"
//	@Failure		403				{object}	tasksdk.APIError			"msg"
//	@Failure		500				{object}	tasksdk.APIError			"msg"
//	@Router			/tasks/create [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		tasksdk.ErrMissingToken.WriteError(w)
		return
	}

	var req tasksdk.CreateTaskRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		tasksdk.ErrInvalidBody.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Task) == "" || req.Priority == "" || strings.TrimSpace(req.Deadline) == "" {
		tasksdk.NewAPIError(http.StatusBadRequest, tasksdk.MsgTaskFieldsRequired).WriteError(w)
		return
	}
	if err := req.Validate(); err != nil {
		tasksdk.ErrInvalidBody.WithDetails(tasksdk.ValidationDetails(err)).WriteError(w)
		return
	}

	task, err := h.TaskService.Create(r.Context(), actor, service.NewTask{
		Task:     req.Task,
		Priority: req.Priority,
		Deadline: req.Deadline,
	})
	if err != nil {
		writeTaskError(w, r, err, "Could not post task")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.TaskResponse{Msg: "Task successfully created", Item: toTask(task)})
}

// HandleUpdate handles PATCH /tasks/update/{id}
//
//	@Summary		Update Task
//	@Description	Changes the provided fields of one of the caller's tasks.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string						true	"Bearer token of the owning member"
//	@Param			id				path		string						true	"Task ID"
//	@Param			request			body		tasksdk.UpdateTaskRequest	true	"Fields to change"
//	@Success		200				{object}	tasksdk.TaskResponse		"msg, item"
//	@Failure		400				{object}	tasksdk.APIError			"msg, details"
//	@Failure		401				{object}	tasksdk.APIError			"msg"
//	@Failure		403				{object}	tasksdk.APIError			"msg"
//	@Failure		500				{object}	tasksdk.APIError			"msg"
//	@Router			/tasks/update/{id} [patch].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		tasksdk.ErrMissingToken.WriteError(w)
		return
	}

	var req tasksdk.UpdateTaskRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		tasksdk.ErrInvalidBody.WriteError(w)
		return
	}
	if req.Empty() {
		tasksdk.NewAPIError(http.StatusBadRequest, tasksdk.MsgUpdateFieldsRequired).WriteError(w)
		return
	}
	if err := req.Validate(); err != nil {
		tasksdk.ErrInvalidBody.WithDetails(tasksdk.ValidationDetails(err)).WriteError(w)
		return
	}

	task, err := h.TaskService.Update(r.Context(), actor, r.PathValue("id"), domain.TaskPatch{
		Task:     req.Task,
		Priority: req.Priority,
		Status:   req.Status,
		Deadline: req.Deadline,
	})
	if err != nil {
		writeTaskError(w, r, err, "Could not update Task")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.TaskResponse{Msg: "Task updated successfully", Item: toTask(task)})
}

// HandleApprove handles PATCH /tasks/approveToDelete/{id}
//
//	@Summary		Approve Task Deletion
//	@Description	Marks a task as deletable by its owner. Approving twice is not an error.
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string					true	"Bearer token of a manager"
//	@Param			id				path		string					true	"Task ID"
//	@Success		200				{object}	tasksdk.TaskResponse	"msg, item"
//	@Failure		401				{object}	tasksdk.APIError		"msg"
//	@Failure		403				{object}	tasksdk.APIError		"msg"
//	@Failure		500				{object}	tasksdk.APIError		"msg"
//	@Router			/tasks/approveToDelete/{id} [patch].
func (h *TasksHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	task, err := h.TaskService.Approve(r.Context(), r.PathValue("id"))
	if err != nil {
		writeTaskError(w, r, err, "Could not approve task for deletion")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.TaskResponse{Msg: "Task has been approved to delete", Item: toTask(task)})
}

// HandleDelete handles DELETE /tasks/delete/{id}
//
//	@Summary		Delete Task
//	@Description	Deletes one of the caller's tasks once a manager has approved it.
//	@Tags			Tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string					true	"Bearer token of the owning member"
//	@Param			id				path		string					true	"Task ID"
//	@Success		200				{object}	tasksdk.MessageResponse	"msg"
//	@Failure		400				{object}	tasksdk.APIError		"msg"
//	@Failure		401				{object}	tasksdk.APIError		"msg"
//	@Failure		403				{object}	tasksdk.APIError		"msg"
//	@Failure		500				{object}	tasksdk.APIError		"msg"
//	@Router			/tasks/delete/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		tasksdk.ErrMissingToken.WriteError(w)
		return
	}

	if err := h.TaskService.Delete(r.Context(), actor, r.PathValue("id")); err != nil {
		writeTaskError(w, r, err, "Internal Server Error: Error occured while deleting task")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.MessageResponse{Msg: "Task Deleted Successfully"})
}
