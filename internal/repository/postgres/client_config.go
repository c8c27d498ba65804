package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/pits-server/internal/model"
)

var _ model.ClientConfigStore = (*ClientConfigRepository)(nil)

const clientConfigColumns = `client_id, api, owner, scopes, created_at`

type ClientConfigRepository struct {
	db Querier
}

func NewClientConfigRepository(db Querier) *ClientConfigRepository {
	return &ClientConfigRepository{db: db}
}

func (r *ClientConfigRepository) Get(ctx context.Context, api, clientID string) (model.ClientConfig, bool, error) {
	query := `SELECT ` + clientConfigColumns + ` FROM client_configs WHERE api = $1 AND client_id = $2`

	cfg, err := scanClientConfig(r.db.QueryRow(ctx, query, api, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ClientConfig{}, false, nil
		}
		return model.ClientConfig{}, false, model.NewRepositoryError(model.EntityClientConfig, err)
	}

	return cfg, true, nil
}

func (r *ClientConfigRepository) ListByOwner(ctx context.Context, owner string) ([]model.ClientConfig, error) {
	query := `SELECT ` + clientConfigColumns + ` FROM client_configs WHERE owner = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, owner)
	if err != nil {
		return nil, model.NewRepositoryError(model.EntityClientConfig, err)
	}
	defer rows.Close()

	var configs []model.ClientConfig
	for rows.Next() {
		cfg, err := scanClientConfig(rows)
		if err != nil {
			return nil, model.NewRepositoryError(model.EntityClientConfig, err)
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewRepositoryError(model.EntityClientConfig, err)
	}

	return configs, nil
}

// Create stores cfg unless the owner already has a credential for the API,
// in which case the existing one is returned.
func (r *ClientConfigRepository) Create(ctx context.Context, cfg model.ClientConfig) (model.ClientConfig, error) {
	insert := `INSERT INTO client_configs (` + clientConfigColumns + `)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (api, owner) DO NOTHING
			  RETURNING ` + clientConfigColumns

	saved, err := scanClientConfig(r.db.QueryRow(ctx, insert, cfg.ClientID, cfg.API, cfg.Owner, cfg.Scopes, cfg.CreatedAt))
	if err == nil {
		return saved, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return model.ClientConfig{}, model.NewRepositoryError(model.EntityClientConfig, err)
	}

	existing := `SELECT ` + clientConfigColumns + ` FROM client_configs WHERE api = $1 AND owner = $2`
	saved, err = scanClientConfig(r.db.QueryRow(ctx, existing, cfg.API, cfg.Owner))
	if err != nil {
		return model.ClientConfig{}, model.NewRepositoryError(model.EntityClientConfig, err)
	}

	return saved, nil
}

func scanClientConfig(row pgx.Row) (model.ClientConfig, error) {
	var cfg model.ClientConfig
	if err := row.Scan(&cfg.ClientID, &cfg.API, &cfg.Owner, &cfg.Scopes, &cfg.CreatedAt); err != nil {
		return model.ClientConfig{}, err
	}
	return cfg, nil
}
