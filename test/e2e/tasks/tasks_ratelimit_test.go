//go:build e2e

package tasks_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLogin verifies that /users/login is rate limited per IP.
// The strict profile allows 10 requests per minute.
func TestRateLimitLogin(t *testing.T) {
	baseURL, cleanup := setupTasksContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := tasksdk.NewClient(baseURL)

	var lastErr error
	for i := range 11 {
		_, err := client.Login(t.Context(), "nobody@example.com", "wrong")
		if i < 10 {
			requireUnauthorized(t, err, "request %d should be rejected for credentials, not rate limited", i+1)
			continue
		}
		lastErr = err
	}

	requireStatus(t, lastErr, http.StatusTooManyRequests)
	require.Contains(t, lastErr.Error(), "429")
}
