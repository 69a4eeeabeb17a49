package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOrGenerateSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "secret")

	first, err := LoadOrGenerateSecret(path, 32)
	require.NoError(t, err)
	require.Len(t, first, 43)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// A second call must return the persisted value.
	second, err := LoadOrGenerateSecret(path, 32)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestLoadOrGenerateSecret_Errors(t *testing.T) {
	_, err := LoadOrGenerateSecret("", 32)
	require.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0600))
	_, err = LoadOrGenerateSecret(empty, 32)
	require.Error(t, err)
}
