package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/pits-server/internal/metrics"
	"github.com/dtroode/pits-server/internal/mocks"
	"github.com/dtroode/pits-server/internal/model"
	"github.com/dtroode/pits-server/internal/testutil"
)

func TestAuth_AuthURL(t *testing.T) {
	t.Run("returns provider url", func(t *testing.T) {
		svc := mocks.NewAuthService(t)
		svc.On("AuthURL", mock.Anything, "google").Return("https://accounts.example.com/o/auth?state=n1", nil)

		rec := httptest.NewRecorder()
		NewAuth(svc, testutil.MakeNoopLogger()).AuthURL(rec, httptest.NewRequest(http.MethodGet, "/auth?type=google", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body authURLResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "https://accounts.example.com/o/auth?state=n1", body.AuthURL)
	})

	t.Run("missing type", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewAuth(mocks.NewAuthService(t), testutil.MakeNoopLogger()).AuthURL(rec, httptest.NewRequest(http.MethodGet, "/auth", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown provider", func(t *testing.T) {
		svc := mocks.NewAuthService(t)
		svc.On("AuthURL", mock.Anything, "myspace").Return("", model.ErrUnknownProvider)

		rec := httptest.NewRecorder()
		NewAuth(svc, testutil.MakeNoopLogger()).AuthURL(rec, httptest.NewRequest(http.MethodGet, "/auth?type=myspace", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuth_Callback(t *testing.T) {
	expires := time.UnixMilli(1714608000000)

	t.Run("state is accepted as nonce", func(t *testing.T) {
		svc := mocks.NewAuthService(t)
		svc.On("HasProvider", "github").Return(true)
		svc.On("CompleteAuth", mock.Anything, model.AuthCallback{Type: "github", Code: "c1", Nonce: "n1"}).
			Return(model.Session{Token: "tok", ExpiresAt: expires}, nil)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/auth/github?code=c1&state=n1", nil), map[string]string{"type": "github"})
		rec := httptest.NewRecorder()
		NewAuth(svc, testutil.MakeNoopLogger()).Callback(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body sessionResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, sessionDTO{Token: "tok", ExpiresAt: 1714608000000}, body.Session)
	})

	t.Run("nonce wins over state", func(t *testing.T) {
		svc := mocks.NewAuthService(t)
		svc.On("HasProvider", "google").Return(true)
		svc.On("CompleteAuth", mock.Anything, model.AuthCallback{Type: "google", Code: "c1", Nonce: "n1"}).
			Return(model.Session{Token: "tok", ExpiresAt: expires}, nil)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/auth/google?code=c1&nonce=n1&state=other", nil), map[string]string{"type": "google"})
		rec := httptest.NewRecorder()
		NewAuth(svc, testutil.MakeNoopLogger()).Callback(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejected login", func(t *testing.T) {
		svc := mocks.NewAuthService(t)
		svc.On("HasProvider", "google").Return(true)
		svc.On("CompleteAuth", mock.Anything, model.AuthCallback{Type: "google", Error: "access_denied", Nonce: "n1"}).
			Return(model.Session{}, model.ErrUnauthorized)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/auth/google?error=access_denied&nonce=n1", nil), map[string]string{"type": "google"})
		rec := httptest.NewRecorder()
		NewAuth(svc, testutil.MakeNoopLogger()).Callback(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unregistered types share one metric series", func(t *testing.T) {
		svc := mocks.NewAuthService(t)
		svc.On("HasProvider", mock.Anything).Return(false)
		svc.On("CompleteAuth", mock.Anything, mock.Anything).Return(model.Session{}, model.ErrUnauthorized)

		unknown := metrics.AuthCompletionsTotal.WithLabelValues(unknownProviderLabel, http.StatusText(http.StatusUnauthorized))
		seriesBefore := promtest.CollectAndCount(metrics.AuthCompletionsTotal)
		countBefore := promtest.ToFloat64(unknown)

		h := NewAuth(svc, testutil.MakeNoopLogger())
		for _, providerType := range []string{"xaa", "xab"} {
			req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/auth/"+providerType+"?code=c&nonce=n", nil), map[string]string{"type": providerType})
			rec := httptest.NewRecorder()
			h.Callback(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		}

		assert.Equal(t, seriesBefore, promtest.CollectAndCount(metrics.AuthCompletionsTotal))
		assert.Equal(t, countBefore+2, promtest.ToFloat64(unknown))
	})
}
