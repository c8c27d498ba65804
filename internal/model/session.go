package model

import (
	"context"
	"time"
)

// NonceDuration is a TTL for OAuth login nonces.
const NonceDuration = time.Minute * 10

// NonceStore persists single-use OAuth nonces.
type NonceStore interface {
	Create(ctx context.Context, nonce Nonce) error
	// Consume marks the nonce used if it exists for scope, is not expired and was not consumed yet.
	Consume(ctx context.Context, id, scope string) (bool, error)
}

// Nonce binds an OAuth login attempt to a provider.
type Nonce struct {
	ID        string
	Scope     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Session is a bearer credential issued after a completed OAuth login.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// AuthCallback carries the query parameters of an OAuth redirect.
type AuthCallback struct {
	Type  string
	Code  string
	Error string
	Nonce string
}
