package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"TASKS_JWT_SECRET", "TASKS_ISSUER", "TASKS_TOKEN_TTL", "PORT", "HOUSEKEEPING_INTERVAL"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "taskboard", cfg.Issuer)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, 7700, cfg.Port)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	require.Empty(t, cfg.JWTSecret)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TASKS_ISSUER", "other")
	t.Setenv("TASKS_TOKEN_TTL", "30m")
	t.Setenv("PORT", "9000")
	t.Setenv("HOUSEKEEPING_INTERVAL", "5")

	cfg := LoadConfig()
	require.Equal(t, "other", cfg.Issuer)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL)
	require.Equal(t, 9000, cfg.Port)
	require.Equal(t, 5*time.Minute, cfg.HousekeepingInterval)
}

func TestGetEnvIntOrDefaultInvalid(t *testing.T) {
	t.Setenv("PORT", "eighty")
	require.Equal(t, 7700, getEnvIntOrDefault("PORT", 7700))
}

func TestInitSigner(t *testing.T) {
	dir := t.TempDir()

	t.Run("explicit secret", func(t *testing.T) {
		s, err := InitSigner(Config{JWTSecret: "0123456789abcdef0123456789abcdef", Issuer: "x"}, slogx.Discard())
		require.NoError(t, err)
		require.Equal(t, "HS256", s.Alg())
	})

	t.Run("short secret rejected", func(t *testing.T) {
		_, err := InitSigner(Config{JWTSecret: "short", Issuer: "x"}, slogx.Discard())
		require.Error(t, err)
	})

	t.Run("generated secret is reused", func(t *testing.T) {
		cfg := Config{SecretFile: filepath.Join(dir, "jwt_secret"), Issuer: "x"}

		first, err := InitSigner(cfg, slogx.Discard())
		require.NoError(t, err)
		_, err = os.Stat(cfg.SecretFile)
		require.NoError(t, err)

		second, err := InitSigner(cfg, slogx.Discard())
		require.NoError(t, err)

		tok, err := first.Sign(jwtx.NewAccessClaims(jwtx.Principal{ID: "u"}, "x", time.Hour, time.Now()))
		require.NoError(t, err)
		_, err = second.Verify(tok)
		require.NoError(t, err)
	})
}
