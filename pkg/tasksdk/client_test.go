package tasksdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientLoginAndSession(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "right" {
			ErrInvalidCredentials.WriteError(w)
			return
		}
		_ = json.NewEncoder(w).Encode(LoginResponse{Msg: "User logged in successfully!", AccessToken: "tok"})
	})
	mux.HandleFunc("GET /tasks", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			ErrMissingToken.WriteError(w)
			return
		}
		_ = json.NewEncoder(w).Encode([]Task{{ID: "t1", Task: "write", ApprovedToDelete: "no"}})
	})
	mux.HandleFunc("DELETE /tasks/delete/{id}", func(w http.ResponseWriter, r *http.Request) {
		ErrNotApproved.WriteError(w)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	ctx := context.Background()
	client := NewClient(srv.URL + "/")

	t.Run("wrong password", func(t *testing.T) {
		_, err := client.Login(ctx, "a@b.co", "wrong")
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, "Invalid email or password", apiErr.Msg)
	})

	session, err := client.Login(ctx, "a@b.co", "right")
	require.NoError(t, err)
	require.Equal(t, "tok", session.AccessToken())

	tasks, err := session.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "t1", tasks[0].ID)

	err = session.DeleteTask(ctx, "t1")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	_, err = client.NewSession("other").ListTasks(ctx)
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestParseErrorResponseFallback(t *testing.T) {
	t.Parallel()

	resp := &http.Response{StatusCode: http.StatusBadGateway}
	err := parseErrorResponse(resp, []byte("<html>"))
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Contains(t, apiErr.Msg, "Bad Gateway")

	require.NoError(t, parseErrorResponse(&http.Response{StatusCode: http.StatusOK}, nil))
}

func TestAPIErrorWithDetails(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	ErrInvalidBody.WithDetails(map[string]string{"task": "cannot be blank"}).WriteError(rec)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"msg":"Invalid request body","details":{"task":"cannot be blank"}}`, rec.Body.String())
	require.Nil(t, ErrInvalidBody.Details)
}
