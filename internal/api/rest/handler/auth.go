package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dtroode/pits-server/internal/api/rest/response"
	"github.com/dtroode/pits-server/internal/logger"
	"github.com/dtroode/pits-server/internal/metrics"
	"github.com/dtroode/pits-server/internal/model"
)

// AuthService defines the OAuth login operations.
type AuthService interface {
	AuthURL(ctx context.Context, providerType string) (string, error)
	CompleteAuth(ctx context.Context, cb model.AuthCallback) (model.Session, error)
	HasProvider(tag string) bool
}

// unknownProviderLabel is the metric label of every callback for an unregistered provider.
const unknownProviderLabel = "unknown"

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

// AuthURL returns the consent URL of the provider named by the type query parameter.
func (h *Auth) AuthURL(w http.ResponseWriter, r *http.Request) {
	providerType := r.URL.Query().Get("type")
	if providerType == "" {
		response.WriteError(w, http.StatusBadRequest, response.ErrCodeBadRequest, "type is required")
		return
	}

	url, err := h.authService.AuthURL(r.Context(), providerType)
	if err != nil {
		h.logger.Info("Auth handler: auth url failed",
			"type", providerType,
			"error", err.Error())
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, authURLResponse{AuthURL: url})
}

// Callback completes an OAuth redirect. The nonce may arrive as nonce or as OAuth state.
func (h *Auth) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cb := model.AuthCallback{
		Type:  mux.Vars(r)["type"],
		Code:  q.Get("code"),
		Error: q.Get("error"),
		Nonce: q.Get("nonce"),
	}
	if cb.Nonce == "" {
		cb.Nonce = q.Get("state")
	}

	h.logger.Debug("Auth handler: processing callback",
		"type", cb.Type)

	provider := cb.Type
	if !h.authService.HasProvider(provider) {
		provider = unknownProviderLabel
	}

	session, err := h.authService.CompleteAuth(r.Context(), cb)
	if err != nil {
		status, _ := response.Classify(err)
		metrics.AuthCompletionsTotal.WithLabelValues(provider, http.StatusText(status)).Inc()
		h.logger.Info("Auth handler: login rejected",
			"type", cb.Type,
			"error", err.Error())
		response.FromError(w, err)
		return
	}

	metrics.AuthCompletionsTotal.WithLabelValues(provider, http.StatusText(http.StatusOK)).Inc()
	response.JSON(w, http.StatusOK, sessionResponse{Session: toSessionDTO(session)})
}
