package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// UsersHandler serves account registration, listing and admin status changes.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleList handles GET /users
//
//	@Summary		List Users
//	@Description	Returns every registered account. Password hashes are never included.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		tasksdk.User
//	@Failure		500	{object}	tasksdk.APIError	"msg"
//	@Router			/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list users", "error", err)
		tasksdk.NewAPIError(http.StatusInternalServerError, "Could not fetch users").WriteError(w)
		return
	}

	out := make([]tasksdk.User, 0, len(users))
	for _, u := range users {
		out = append(out, toUser(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleRegister handles POST /users/register
//
//	@Summary		Register User
//	@Description	Creates an active account. role may be a single role name or an array of role names.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.RegisterRequest	true	"Registration request"
//	@Success		200		{object}	tasksdk.UserResponse	"item"
//	@Failure		400		{object}	tasksdk.APIError		"msg, details"
//	@Failure		409		{object}	tasksdk.APIError		"msg"
//	@Failure		500		{object}	tasksdk.APIError		"msg"
//	@Router			/users/register [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tasksdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		tasksdk.ErrInvalidBody.WriteError(w)
		return
	}

	if req.MissingFields() {
		tasksdk.NewAPIError(http.StatusBadRequest, tasksdk.MsgRegisterFieldsRequired).WriteError(w)
		return
	}
	if err := req.Validate(); err != nil {
		tasksdk.ErrInvalidBody.WithDetails(tasksdk.ValidationDetails(err)).WriteError(w)
		return
	}

	user, err := h.UserService.Register(ctx, service.Registration{
		Username: req.Username,
		Email:    req.Email,
		Roles:    req.Role,
		Password: req.Password,
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUserExists):
		tasksdk.ErrUserExists.WriteError(w)
		return
	case errors.Is(err, service.ErrMissingUserData):
		tasksdk.NewAPIError(http.StatusBadRequest, tasksdk.MsgRegisterFieldsRequired).WriteError(w)
		return
	case errors.Is(err, service.ErrInvalidRole):
		tasksdk.ErrInvalidBody.WithDetails(map[string]string{"role": "must be one of admin, manager, member"}).WriteError(w)
		return
	default:
		log.Error("failed to register user", "error", err)
		tasksdk.NewAPIError(http.StatusInternalServerError, "Could not register user").WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.UserResponse{Item: toUser(user)})
}

// HandleDisable handles PATCH /users/disable/{id}
//
//	@Summary		Disable User
//	@Description	Bans an account. The user can no longer log in and existing tokens stop working.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string					true	"Bearer token of an admin"
//	@Param			id				path		string					true	"User ID"
//	@Success		200				{object}	tasksdk.UserResponse	"msg, item"
//	@Failure		401				{object}	tasksdk.APIError		"msg"
//	@Failure		403				{object}	tasksdk.APIError		"msg"
//	@Failure		500				{object}	tasksdk.APIError		"msg"
//	@Router			/users/disable/{id} [patch].
func (h *UsersHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.UserService.Disable, "User banned")
}

// HandleEnable handles PATCH /users/enable/{id}
//
//	@Summary		Enable User
//	@Description	Reactivates a banned account.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string					true	"Bearer token of an admin"
//	@Param			id				path		string					true	"User ID"
//	@Success		200				{object}	tasksdk.UserResponse	"msg, item"
//	@Failure		401				{object}	tasksdk.APIError		"msg"
//	@Failure		403				{object}	tasksdk.APIError		"msg"
//	@Failure		500				{object}	tasksdk.APIError		"msg"
//	@Router			/users/enable/{id} [patch].
func (h *UsersHandler) HandleEnable(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.UserService.Enable, "User activated")
}

type statusChange func(ctx context.Context, userID string) (domain.User, error)

func (h *UsersHandler) setStatus(w http.ResponseWriter, r *http.Request, change statusChange, msg string) {
	ctx := r.Context()

	user, err := change(ctx, r.PathValue("id"))
	if err != nil {
		// Unknown ids are reported like any other store failure.
		slogx.FromContext(ctx).Error("failed to change user status", "target_user_id", r.PathValue("id"), "error", err)
		tasksdk.NewAPIError(http.StatusInternalServerError, "Could not update user status").WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.UserResponse{Msg: msg, Item: toUser(user)})
}
