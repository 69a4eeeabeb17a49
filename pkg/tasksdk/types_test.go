package tasksdk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoleListUnmarshal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want RoleList
		err  bool
	}{
		{"single string", `{"role":"member"}`, RoleList{"member"}, false},
		{"array", `{"role":["manager","member"]}`, RoleList{"manager", "member"}, false},
		{"empty string", `{"role":""}`, nil, false},
		{"null", `{"role":null}`, nil, false},
		{"absent", `{}`, nil, false},
		{"number", `{"role":7}`, nil, true},
		{"array of numbers", `{"role":[1,2]}`, nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req RegisterRequest
			err := json.Unmarshal([]byte(tc.in), &req)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, req.Role)
		})
	}
}

func TestUpdateTaskRequestEmpty(t *testing.T) {
	t.Parallel()

	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	require.True(t, req.Empty())

	require.NoError(t, json.Unmarshal([]byte(`{"status":"completed"}`), &req))
	require.False(t, req.Empty())
	require.Equal(t, "completed", *req.Status)
	require.Nil(t, req.Task)
}

func TestUserJSONOmitsNothingSecret(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(User{ID: "1", Username: "a", Roles: []string{"member"}})
	require.NoError(t, err)
	require.NotContains(t, string(b), "password")
}
