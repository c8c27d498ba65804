package postgres

import (
	"context"

	"github.com/dtroode/pits-server/internal/model"
)

var _ model.NonceStore = (*NonceRepository)(nil)

type NonceRepository struct {
	db Querier
}

func NewNonceRepository(db Querier) *NonceRepository {
	return &NonceRepository{db: db}
}

func (r *NonceRepository) Create(ctx context.Context, nonce model.Nonce) error {
	const query = `
        INSERT INTO nonces (id, scope, created_at, expires_at)
        VALUES ($1, $2, $3, $4)
    `

	if _, err := r.db.Exec(ctx, query, nonce.ID, nonce.Scope, nonce.CreatedAt, nonce.ExpiresAt); err != nil {
		return model.NewRepositoryError(model.EntityNonce, err)
	}
	return nil
}

// Consume marks the nonce used in a single statement so that concurrent
// completions of the same login cannot both succeed.
func (r *NonceRepository) Consume(ctx context.Context, id, scope string) (bool, error) {
	const query = `
        UPDATE nonces SET consumed_at = NOW()
        WHERE id = $1 AND scope = $2 AND consumed_at IS NULL AND expires_at > NOW()
    `

	tag, err := r.db.Exec(ctx, query, id, scope)
	if err != nil {
		return false, model.NewRepositoryError(model.EntityNonce, err)
	}
	return tag.RowsAffected() == 1, nil
}
