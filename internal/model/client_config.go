package model

import (
	"context"
	"time"
)

const (
	// SessionAPI is the API scope of console session credentials.
	SessionAPI = "session"
	// DefaultSessionGrant is granted to newly provisioned session credentials.
	DefaultSessionGrant = "console:read"
)

// ClientConfigStore persists API-scoped client credentials.
type ClientConfigStore interface {
	Get(ctx context.Context, api, clientID string) (ClientConfig, bool, error)
	ListByOwner(ctx context.Context, owner string) ([]ClientConfig, error)
	Create(ctx context.Context, cfg ClientConfig) (ClientConfig, error)
}

// ClientConfig is a credential of one owner for one API.
type ClientConfig struct {
	ClientID  string
	API       string
	Owner     string
	Scopes    []string
	CreatedAt time.Time
}
