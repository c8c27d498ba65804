package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/pits-server/internal/model"
)

var userColumns = []string{"email", "first_name", "last_name", "image"}

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestUserRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer db.Close()

		db.ExpectQuery(`FROM users WHERE email = \$1`).
			WithArgs("a@b.c").
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow("a@b.c", "Ann", "Lee", "https://img/a.png"))

		user, ok, err := NewUserRepository(db).Get(ctx, "a@b.c")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, model.User{Email: "a@b.c", FirstName: "Ann", LastName: "Lee", Image: "https://img/a.png"}, user)
		require.NoError(t, db.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		db, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer db.Close()

		db.ExpectQuery(`FROM users WHERE email = \$1`).WithArgs("x@y.z").WillReturnError(pgx.ErrNoRows)

		_, ok, err := NewUserRepository(db).Get(ctx, "x@y.z")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("store fault", func(t *testing.T) {
		db, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer db.Close()

		db.ExpectQuery(`FROM users WHERE email = \$1`).WithArgs("a@b.c").WillReturnError(errors.New("conn refused"))

		_, ok, err := NewUserRepository(db).Get(ctx, "a@b.c")
		assert.False(t, ok)
		var repoErr *model.RepositoryError
		require.ErrorAs(t, err, &repoErr)
		assert.Equal(t, model.EntityUser, repoErr.Entity)
	})
}

func TestUserRepository_Save(t *testing.T) {
	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer db.Close()

	db.ExpectExec(`INSERT INTO users`).
		WithArgs("a@b.c", "Ann", "Lee", "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = NewUserRepository(db).Save(context.Background(), model.User{Email: "a@b.c", FirstName: "Ann", LastName: "Lee"})
	require.NoError(t, err)
	require.NoError(t, db.ExpectationsWereMet())
}

func TestUserRepository_BatchGetByOwners(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input skips the store", func(t *testing.T) {
		db, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer db.Close()

		users, err := NewUserRepository(db).BatchGetByOwners(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, users)
		require.NoError(t, db.ExpectationsWereMet())
	})

	t.Run("deduplicated keys", func(t *testing.T) {
		db, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer db.Close()

		db.ExpectQuery(`FROM users WHERE email = ANY\(\$1\)`).
			WithArgs([]string{"a@b.c", "d@e.f"}).
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow("d@e.f", "Dan", "Fox", ""))

		users, err := NewUserRepository(db).BatchGetByOwners(ctx, []model.DeviceOwner{
			{DeviceID: "d1", OwnerID: "a@b.c"},
			{DeviceID: "d1", OwnerID: "d@e.f"},
			{DeviceID: "d2", OwnerID: "a@b.c"},
		})
		require.NoError(t, err)
		assert.Equal(t, []model.User{{Email: "d@e.f", FirstName: "Dan", LastName: "Fox"}}, users)
		require.NoError(t, db.ExpectationsWereMet())
	})
}
