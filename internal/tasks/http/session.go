package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// SessionHandler issues and revokes access tokens.
type SessionHandler struct {
	SessionService *service.SessionService
}

// HandleLogin handles POST /users/login
//
//	@Summary		Log In
//	@Description	Exchanges email and password for a one-hour HS256 access token.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	tasksdk.LoginResponse	"msg, accessToken"
//	@Failure		400		{object}	tasksdk.APIError		"msg"
//	@Failure		401		{object}	tasksdk.APIError		"msg"
//	@Failure		403		{object}	tasksdk.APIError		"msg"
//	@Failure		500		{object}	tasksdk.APIError		"msg"
//	@Router			/users/login [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req tasksdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		tasksdk.ErrInvalidBody.WriteError(w)
		return
	}
	if err := req.Validate(); err != nil {
		tasksdk.NewAPIError(http.StatusBadRequest, tasksdk.MsgLoginFieldsRequired).
			WithDetails(tasksdk.ValidationDetails(err)).
			WriteError(w)
		return
	}

	tok, _, err := h.SessionService.Login(ctx, req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidCredentials):
		tasksdk.ErrInvalidCredentials.WriteError(w)
		return
	case errors.Is(err, service.ErrAccountDisabled):
		tasksdk.ErrAccountDisabled.WriteError(w)
		return
	default:
		slogx.FromContext(ctx).Error("login failed", "error", err)
		tasksdk.NewAPIError(http.StatusInternalServerError, "Could not login").WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tasksdk.LoginResponse{
		Msg:         "User logged in successfully!",
		AccessToken: tok.Token,
	})
}

// HandleLogout handles POST /users/logout
//
//	@Summary		Log Out
//	@Description	Revokes the presented access token. Any later request carrying it is rejected.
//	@Tags			Session
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Authorization	header		string					true	"Bearer token"
//	@Success		200				{object}	tasksdk.MessageResponse	"msg"
//	@Failure		401				{object}	tasksdk.APIError		"msg"
//	@Failure		500				{object}	tasksdk.APIError		"msg"
//	@Router			/users/logout [post].
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := httpx.BearerToken(r)
	if !ok {
		tasksdk.ErrMissingToken.WriteError(w)
		return
	}

	if err := h.SessionService.Logout(ctx, token); err != nil {
		slogx.FromContext(ctx).Error("logout failed", "error", err)
		tasksdk.NewAPIError(http.StatusInternalServerError, "Could not logout").WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.MessageResponse{Msg: "Logout Successful"})
}
