package model

import (
	"context"

	"golang.org/x/oauth2"
)

// IdentityProvider is an external OAuth identity source.
type IdentityProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	Profile(ctx context.Context, token *oauth2.Token) (Profile, error)
}
