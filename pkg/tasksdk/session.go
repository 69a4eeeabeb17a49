package tasksdk

import (
	"context"
	"net/http"
	"net/url"
	"sync"
)

// Session performs requests on behalf of a logged-in user.
type Session struct {
	client *Client

	mu          sync.RWMutex
	accessToken string
}

// AccessToken returns the bearer token of the session.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *Session) do(ctx context.Context, method, path string, in, out any) error {
	resp, err := s.client.doRequest(ctx, method, path, s.AccessToken(), in)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, http.StatusOK)
}

// Logout revokes the session's token on the server.
func (s *Session) Logout(ctx context.Context) error {
	var out MessageResponse
	return s.do(ctx, http.MethodPost, "/users/logout", nil, &out)
}

// ListTasks returns the tasks visible to the caller's roles.
func (s *Session) ListTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	if err := s.do(ctx, http.MethodGet, "/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTask creates a task owned by the caller. Requires the member role.
func (s *Session) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	var out TaskResponse
	if err := s.do(ctx, http.MethodPost, "/tasks/create", req, &out); err != nil {
		return nil, err
	}
	return &out.Item, nil
}

// UpdateTask changes the provided fields of one of the caller's tasks.
func (s *Session) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*Task, error) {
	var out TaskResponse
	if err := s.do(ctx, http.MethodPatch, "/tasks/update/"+url.PathEscape(id), req, &out); err != nil {
		return nil, err
	}
	return &out.Item, nil
}

// ApproveTaskDeletion marks a task as deletable. Requires the manager role.
func (s *Session) ApproveTaskDeletion(ctx context.Context, id string) (*Task, error) {
	var out TaskResponse
	if err := s.do(ctx, http.MethodPatch, "/tasks/approveToDelete/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Item, nil
}

// DeleteTask removes an approved task owned by the caller.
func (s *Session) DeleteTask(ctx context.Context, id string) error {
	var out MessageResponse
	return s.do(ctx, http.MethodDelete, "/tasks/delete/"+url.PathEscape(id), nil, &out)
}

// DisableUser bans an account. Requires the admin role.
func (s *Session) DisableUser(ctx context.Context, id string) (*User, error) {
	var out UserResponse
	if err := s.do(ctx, http.MethodPatch, "/users/disable/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Item, nil
}

// EnableUser reactivates an account. Requires the admin role.
func (s *Session) EnableUser(ctx context.Context, id string) (*User, error) {
	var out UserResponse
	if err := s.do(ctx, http.MethodPatch, "/users/enable/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Item, nil
}
