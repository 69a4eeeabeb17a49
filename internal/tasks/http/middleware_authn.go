package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

// AuthnMiddleware resolves the bearer token to a live, active user and puts
// its identity in the request context.
func AuthnMiddleware(sessions *service.SessionService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			token, ok := httpx.BearerToken(r)
			if !ok {
				tasksdk.ErrMissingToken.WriteError(w)
				return
			}

			user, err := sessions.Authenticate(ctx, token)
			switch {
			case err == nil:
			case errors.Is(err, service.ErrTokenRevoked):
				tasksdk.ErrLoggedOut.WriteError(w)
				return
			case errors.Is(err, service.ErrInvalidToken):
				log.Info("token rejected", "error", err)
				tasksdk.ErrInvalidToken.WriteError(w)
				return
			case errors.Is(err, service.ErrAccountDisabled):
				tasksdk.ErrAccountDisabledToken.WriteError(w)
				return
			default:
				log.Error("authentication failed", "error", err)
				tasksdk.NewAPIError(http.StatusInternalServerError, "Internal Server Error").WriteError(w)
				return
			}

			ctx = httpx.WithIdentity(ctx, httpx.Identity{
				UserID:   user.ID,
				Username: user.Username,
				Email:    user.Email,
				Roles:    user.Roles,
			})
			ctx = slogx.With(ctx, "user_id", user.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
