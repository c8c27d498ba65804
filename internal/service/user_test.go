package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/pits-server/internal/mocks"
	"github.com/dtroode/pits-server/internal/model"
	"github.com/dtroode/pits-server/internal/testutil"
)

func TestUsers_Me(t *testing.T) {
	ctx := context.Background()
	caller := model.ClientConfig{ClientID: "client-a", API: model.SessionAPI, Owner: "a@b.c"}

	t.Run("found", func(t *testing.T) {
		store := mocks.NewUserStore(t)
		store.On("Get", mock.Anything, "a@b.c").Return(model.User{Email: "a@b.c", FirstName: "Ann"}, true, nil)

		got, err := NewUsers(store, testutil.MakeNoopLogger()).Me(ctx, caller)
		require.NoError(t, err)
		assert.Equal(t, "Ann", got.FirstName)
	})

	t.Run("missing user is unauthorized", func(t *testing.T) {
		store := mocks.NewUserStore(t)
		store.On("Get", mock.Anything, "a@b.c").Return(model.User{}, false, nil)

		_, err := NewUsers(store, testutil.MakeNoopLogger()).Me(ctx, caller)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("store fault", func(t *testing.T) {
		store := mocks.NewUserStore(t)
		store.On("Get", mock.Anything, "a@b.c").Return(model.User{}, false, errors.New("down"))

		_, err := NewUsers(store, testutil.MakeNoopLogger()).Me(ctx, caller)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrUnauthorized)
	})
}
