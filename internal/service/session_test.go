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

func TestSessions_Resolve(t *testing.T) {
	cfg := model.ClientConfig{ClientID: "client-1", API: model.SessionAPI, Owner: "a@b.c"}

	tests := []struct {
		name          string
		authorization string
		setup         func(tm *mocks.TokenManager, cs *mocks.ClientConfigStore)
		wantOK        bool
		wantErr       bool
	}{
		{
			name:          "bearer prefix stripped",
			authorization: "Bearer abc123",
			setup: func(tm *mocks.TokenManager, cs *mocks.ClientConfigStore) {
				tm.On("Lookup", "abc123", model.SessionAPI).Return("client-1", true)
				cs.On("Get", mock.Anything, model.SessionAPI, "client-1").Return(cfg, true, nil)
			},
			wantOK: true,
		},
		{
			name:          "raw token accepted",
			authorization: "abc123",
			setup: func(tm *mocks.TokenManager, cs *mocks.ClientConfigStore) {
				tm.On("Lookup", "abc123", model.SessionAPI).Return("client-1", true)
				cs.On("Get", mock.Anything, model.SessionAPI, "client-1").Return(cfg, true, nil)
			},
			wantOK: true,
		},
		{
			name:          "prefix is case sensitive",
			authorization: "bearer abc123",
			setup: func(tm *mocks.TokenManager, cs *mocks.ClientConfigStore) {
				tm.On("Lookup", "bearer abc123", model.SessionAPI).Return("", false)
			},
		},
		{
			name:          "prefix stripped once",
			authorization: "Bearer Bearer abc123",
			setup: func(tm *mocks.TokenManager, cs *mocks.ClientConfigStore) {
				tm.On("Lookup", "Bearer abc123", model.SessionAPI).Return("", false)
			},
		},
		{
			name:          "empty header",
			authorization: "",
			setup:         func(tm *mocks.TokenManager, cs *mocks.ClientConfigStore) {},
		},
		{
			name:          "prefix only",
			authorization: "Bearer ",
			setup:         func(tm *mocks.TokenManager, cs *mocks.ClientConfigStore) {},
		},
		{
			name:          "config missing",
			authorization: "Bearer abc123",
			setup: func(tm *mocks.TokenManager, cs *mocks.ClientConfigStore) {
				tm.On("Lookup", "abc123", model.SessionAPI).Return("client-1", true)
				cs.On("Get", mock.Anything, model.SessionAPI, "client-1").Return(model.ClientConfig{}, false, nil)
			},
		},
		{
			name:          "store fault",
			authorization: "Bearer abc123",
			setup: func(tm *mocks.TokenManager, cs *mocks.ClientConfigStore) {
				tm.On("Lookup", "abc123", model.SessionAPI).Return("client-1", true)
				cs.On("Get", mock.Anything, model.SessionAPI, "client-1").
					Return(model.ClientConfig{}, false, model.NewRepositoryError(model.EntityClientConfig, errors.New("down")))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := mocks.NewTokenManager(t)
			cs := mocks.NewClientConfigStore(t)
			tt.setup(tm, cs)

			s := NewSessions(tm, cs, testutil.MakeNoopLogger())
			got, ok, err := s.Resolve(context.Background(), tt.authorization)

			if tt.wantErr {
				require.Error(t, err)
				var repoErr *model.RepositoryError
				assert.ErrorAs(t, err, &repoErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, cfg, got)
			}
		})
	}
}
