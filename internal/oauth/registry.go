package oauth

import (
	"strings"

	"github.com/dtroode/pits-server/internal/model"
)

// Registry maps provider tags to identity providers.
type Registry map[string]model.IdentityProvider

// NewRegistry registers providers under their tags.
func NewRegistry(providers ...*Provider) Registry {
	r := make(Registry, len(providers))
	for _, p := range providers {
		r[p.Tag()] = p
	}
	return r
}

// Lookup returns the provider registered for tag.
func (r Registry) Lookup(tag string) (model.IdentityProvider, bool) {
	p, ok := r[tag]
	return p, ok
}

// Config lists provider credentials by tag and the public base URL the
// provider redirects back to.
type Config struct {
	PublicURL string
	Google    Credentials
	GitHub    Credentials
	Amazon    Credentials
}

// FromConfig builds a registry with every provider that has a client id.
func FromConfig(cfg Config) Registry {
	redirect := func(tag string) string {
		return strings.TrimSuffix(cfg.PublicURL, "/") + "/auth/" + tag
	}

	var providers []*Provider
	if cfg.Google.ClientID != "" {
		providers = append(providers, NewGoogle(cfg.Google, redirect(TagGoogle)))
	}
	if cfg.GitHub.ClientID != "" {
		providers = append(providers, NewGitHub(cfg.GitHub, redirect(TagGitHub)))
	}
	if cfg.Amazon.ClientID != "" {
		providers = append(providers, NewAmazon(cfg.Amazon, redirect(TagAmazon)))
	}

	return NewRegistry(providers...)
}
