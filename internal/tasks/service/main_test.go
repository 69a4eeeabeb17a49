package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "taskboard-test"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "taskboard-service")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type fixture struct {
	store    *sqlite.Store
	users    *UserService
	sessions *SessionService
	tasks    *TaskService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	hs, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), testIssuer)
	require.NoError(t, err)

	return &fixture{
		store: st,
		users: &UserService{Store: st},
		sessions: &SessionService{
			Store:     st,
			Signer:    hs,
			Verifier:  hs,
			Issuer:    testIssuer,
			AccessTTL: time.Hour,
		},
		tasks: &TaskService{Store: st},
	}
}

func (f *fixture) register(t *testing.T, username string, roles ...string) domain.User {
	t.Helper()
	u, err := f.users.Register(context.Background(), Registration{
		Username: username,
		Email:    username + "@example.com",
		Roles:    roles,
		Password: "password-" + username,
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) login(t *testing.T, u domain.User) string {
	t.Helper()
	tok, _, err := f.sessions.Login(context.Background(), u.Email, "password-"+u.Username)
	require.NoError(t, err)
	return tok.Token
}

func actorOf(u domain.User) Actor {
	return Actor{UserID: u.ID, Username: u.Username, Roles: u.Roles}
}
