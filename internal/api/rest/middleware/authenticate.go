package middleware

import (
	"context"
	"net/http"

	"github.com/dtroode/pits-server/internal/api/rest/response"
	"github.com/dtroode/pits-server/internal/logger"
	"github.com/dtroode/pits-server/internal/model"
)

// SessionResolver resolves an Authorization header value to a session client config.
type SessionResolver interface {
	Resolve(ctx context.Context, authorization string) (model.ClientConfig, bool, error)
}

// Authenticate validates bearer tokens and injects the session client config into context.
type Authenticate struct {
	sessions       SessionResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(sessions SessionResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{sessions: sessions, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a resolvable session with 401 and store faults with 503.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg, ok, err := m.sessions.Resolve(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			m.logger.Error("Authenticate middleware: failed to resolve session",
				"path", r.URL.Path,
				"error", err.Error())
			response.FromError(w, err)
			return
		}
		if !ok {
			response.WriteError(w, http.StatusUnauthorized, response.ErrCodeUnauthorized, "missing or invalid session token")
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetClientConfigToContext(r.Context(), cfg)))
	})
}
