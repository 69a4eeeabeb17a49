/*
Package tasksdk provides the wire types and a Go client for the taskboard
service.

# Overview

The same request and response types are used by the server handlers and by
the client, so both sides agree on field names and validation rules.

  - Client: unauthenticated operations (register, login, list users, health)
  - Session: operations that need a bearer token (tasks, logout, admin)

Typical use:

	client := tasksdk.NewClient("http://localhost:7700")

	_, err := client.Register(ctx, tasksdk.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Role:     tasksdk.RoleList{"member"},
		Password: "correct horse",
	})

	session, err := client.Login(ctx, "alice@example.com", "correct horse")
	task, err := session.CreateTask(ctx, tasksdk.CreateTaskRequest{
		Task:     "write report",
		Priority: "high",
		Deadline: "2025-01-31",
	})

# Error Handling

Non-2xx responses are returned as *APIError carrying the status code and the
server's "msg" text:

	var apiErr *tasksdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
		fmt.Println(apiErr.Msg)
	}

# Thread Safety

Client and Session are safe for concurrent use. A Session is invalid after
Logout; the server rejects its token from then on.
*/
package tasksdk
