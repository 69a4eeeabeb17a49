package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const pepperSize = 32

var (
	pepperMu   sync.Mutex
	pepper     string
	pepperFile string
)

// SetPepperPath configures where the password pepper is persisted. Changing
// the path drops any pepper already loaded.
func SetPepperPath(file string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	pepperFile = file
	pepper = ""
}

// Pepper returns the process-wide password pepper, loading or creating it on
// first use. With no path configured an ephemeral pepper is generated, which
// means hashes will not verify after a restart.
func Pepper() (string, error) {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	if pepper != "" {
		return pepper, nil
	}

	if pepperFile == "" {
		slog.Warn("no pepper file configured, using an ephemeral pepper")
		p, err := GenerateToken(pepperSize)
		if err != nil {
			return "", err
		}
		pepper = p
		return pepper, nil
	}

	p, err := LoadOrGenerateSecret(pepperFile, pepperSize)
	if err != nil {
		return "", fmt.Errorf("load pepper: %w", err)
	}
	pepper = p
	return pepper, nil
}

// LoadOrGenerateSecret reads a base64url secret from path, or generates one
// of size random bytes and writes it there with 0600 permissions.
func LoadOrGenerateSecret(path string, size int) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("cryptox: empty secret path")
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("cryptox: secret file %s is empty", path)
		}
		return secret, nil
	case !errors.Is(err, os.ErrNotExist):
		return "", err
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	secret := base64.RawURLEncoding.EncodeToString(buf)

	if err := os.WriteFile(path, []byte(secret), 0600); err != nil {
		return "", err
	}
	return secret, nil
}
