package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/pits-server/internal/model"
	"github.com/dtroode/pits-server/internal/repository"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Get(ctx context.Context, email string) (model.User, bool, error) {
	var user model.User
	query := `SELECT email, first_name, last_name, image FROM users WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.Email, &user.FirstName, &user.LastName, &user.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, false, nil
		}
		return model.User{}, false, model.NewRepositoryError(model.EntityUser, err)
	}

	return user, true, nil
}

func (r *UserRepository) Save(ctx context.Context, user model.User) error {
	query := `INSERT INTO users (email, first_name, last_name, image)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (email) DO UPDATE SET
			  first_name = EXCLUDED.first_name,
			  last_name = EXCLUDED.last_name,
			  image = EXCLUDED.image`

	if _, err := r.db.Exec(ctx, query, user.Email, user.FirstName, user.LastName, user.Image); err != nil {
		return model.NewRepositoryError(model.EntityUser, err)
	}

	return nil
}

func (r *UserRepository) BatchGetByOwners(ctx context.Context, owners []model.DeviceOwner) ([]model.User, error) {
	emails := repository.OwnerIDs(owners)
	if len(emails) == 0 {
		return []model.User{}, nil
	}

	query := `SELECT email, first_name, last_name, image FROM users WHERE email = ANY($1)`

	rows, err := r.db.Query(ctx, query, emails)
	if err != nil {
		return nil, model.NewRepositoryError(model.EntityUser, err)
	}
	defer rows.Close()

	users := make([]model.User, 0, len(emails))
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.Email, &user.FirstName, &user.LastName, &user.Image); err != nil {
			return nil, model.NewRepositoryError(model.EntityUser, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewRepositoryError(model.EntityUser, err)
	}

	return users, nil
}
