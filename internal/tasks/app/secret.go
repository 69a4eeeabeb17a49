package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
)

const (
	generatedSecretSize = 48
	clockSkewLeeway     = 5 * time.Second
)

// InitSigner builds the HS256 signer. TASKS_JWT_SECRET wins when set;
// otherwise a random secret is generated once into SecretFile so tokens
// survive restarts.
func InitSigner(cfg Config, logger *slog.Logger) (*jwtx.HS256, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		s, err := cryptox.LoadOrGenerateSecret(cfg.SecretFile, generatedSecretSize)
		if err != nil {
			return nil, fmt.Errorf("load signing secret: %w", err)
		}
		secret = s
		logger.Info("using signing secret from file", "path", cfg.SecretFile)
	}

	signer, err := jwtx.NewHS256([]byte(secret), cfg.Issuer)
	if err != nil {
		return nil, err
	}
	return signer.WithLeeway(clockSkewLeeway), nil
}
