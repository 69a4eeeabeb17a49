package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store/drivers/sqlite/gen"
)

type revokedTokensRepo struct {
	q *gen.Queries
}

func (r *revokedTokensRepo) RevokeToken(ctx context.Context, t domain.RevokedToken) error {
	return r.q.RevokeToken(ctx, gen.RevokeTokenParams{
		TokenHash: t.TokenHash,
		UserID:    t.UserID,
		RevokedAt: toMillis(t.RevokedAt),
		ExpiresAt: toMillis(t.ExpiresAt),
	})
}

func (r *revokedTokensRepo) IsTokenRevoked(ctx context.Context, tokenHash string) (bool, error) {
	n, err := r.q.IsTokenRevoked(ctx, tokenHash)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}

func (r *revokedTokensRepo) DeleteExpiredRevokedTokens(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredRevokedTokens(ctx, toMillis(now))
}
