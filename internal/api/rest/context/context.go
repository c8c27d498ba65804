package context

import (
	"context"

	"github.com/dtroode/pits-server/internal/model"
)

type clientConfigKey struct{}

// Manager stores the authenticated session client config in request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetClientConfigToContext returns a copy of ctx carrying cfg.
func (m *Manager) SetClientConfigToContext(ctx context.Context, cfg model.ClientConfig) context.Context {
	return context.WithValue(ctx, clientConfigKey{}, cfg)
}

// GetClientConfigFromContext returns the client config set by SetClientConfigToContext.
func (m *Manager) GetClientConfigFromContext(ctx context.Context) (model.ClientConfig, bool) {
	cfg, ok := ctx.Value(clientConfigKey{}).(model.ClientConfig)
	return cfg, ok
}
