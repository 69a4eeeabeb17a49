package tasksdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/taskboard/pkg/httpx"
)

// APIError is the error body returned by the service. It is used by the
// server to write responses and by the client to represent failures.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Msg is the human-readable message
	Msg string `json:"msg"`

	// Details holds per-field validation messages, when present
	Details map[string]string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Msg)
}

// WriteError writes e to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, e)
}

// WithDetails returns a copy of e carrying field details.
func (e *APIError) WithDetails(details map[string]string) *APIError {
	cp := *e
	cp.Details = details
	return &cp
}

// NewAPIError creates a new APIError.
func NewAPIError(statusCode int, msg string) *APIError {
	return &APIError{StatusCode: statusCode, Msg: msg}
}

// Predefined errors whose text is part of the public contract.
var (
	ErrMissingToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Msg:        "Unauthorized. Provide valid token.",
	}

	ErrLoggedOut = &APIError{
		StatusCode: http.StatusUnauthorized,
		Msg:        "User is logged out. Please log in again",
	}

	ErrInvalidToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Msg:        "Invalid or expired token",
	}

	ErrAccountDisabledToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Msg:        "Account is disabled",
	}

	ErrAccountDisabled = &APIError{
		StatusCode: http.StatusForbidden,
		Msg:        "Account is disabled",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Msg:        "Invalid email or password",
	}

	ErrUserExists = &APIError{
		StatusCode: http.StatusConflict,
		Msg:        "Username or email already registered",
	}

	ErrNotApproved = &APIError{
		StatusCode: http.StatusBadRequest,
		Msg:        "This task has not been approved by the manager to delete.",
	}

	ErrNotOwner = &APIError{
		StatusCode: http.StatusForbidden,
		Msg:        "Insufficient privileges. You do not have access to perform this task",
	}

	ErrInvalidBody = &APIError{
		StatusCode: http.StatusBadRequest,
		Msg:        "Invalid request body",
	}
)

// parseErrorResponse converts a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Msg != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Msg:        fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
