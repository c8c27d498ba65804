package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	restctx "github.com/dtroode/pits-server/internal/api/rest/context"
	"github.com/dtroode/pits-server/internal/mocks"
	"github.com/dtroode/pits-server/internal/model"
	"github.com/dtroode/pits-server/internal/testutil"
)

func TestRouter_Register(t *testing.T) {
	cfg := model.ClientConfig{ClientID: "client-1", API: model.SessionAPI, Owner: "a@b.c"}

	authSvc := mocks.NewAuthService(t)
	deviceSvc := mocks.NewDeviceService(t)
	userSvc := mocks.NewUserService(t)
	sessions := mocks.NewSessionResolver(t)
	pinger := mocks.NewPinger(t)

	sessions.On("Resolve", mock.Anything, "Bearer good").Return(cfg, true, nil)
	sessions.On("Resolve", mock.Anything, "").Return(model.ClientConfig{}, false, nil)
	userSvc.On("Me", mock.Anything, cfg).Return(model.User{Email: "a@b.c"}, nil)
	deviceSvc.On("Get", mock.Anything, cfg, "cam-1").Return(model.Device{ID: "cam-1"}, nil)
	authSvc.On("AuthURL", mock.Anything, "google").Return("https://accounts.example.com", nil)
	pinger.On("Ping", mock.Anything).Return(nil)

	h := New(authSvc, deviceSvc, userSvc, sessions, restctx.NewManager(), pinger, testutil.MakeNoopLogger()).Register()

	tests := []struct {
		name   string
		path   string
		auth   string
		status int
	}{
		{name: "health is public", path: "/health", status: http.StatusOK},
		{name: "metrics is public", path: "/metrics", status: http.StatusOK},
		{name: "auth is public", path: "/auth?type=google", status: http.StatusOK},
		{name: "me requires session", path: "/me", status: http.StatusUnauthorized},
		{name: "me with session", path: "/me", auth: "Bearer good", status: http.StatusOK},
		{name: "device with session", path: "/device/cam-1", auth: "Bearer good", status: http.StatusOK},
		{name: "unknown route", path: "/nope", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
