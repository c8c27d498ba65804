// Package oauth adapts OAuth2 identity providers to the login flow.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/dtroode/pits-server/internal/model"
)

// ProfileDecoder reads a provider specific user info document.
type ProfileDecoder func(r io.Reader) (model.Profile, error)

// Provider is an IdentityProvider backed by an OAuth2 authorization code flow
// and a user info endpoint.
type Provider struct {
	tag        string
	config     *oauth2.Config
	profileURL string
	decode     ProfileDecoder
	enrich     func(ctx context.Context, client *http.Client, p model.Profile) (model.Profile, error)
}

var _ model.IdentityProvider = (*Provider)(nil)

// NewProvider creates a provider identified by tag.
func NewProvider(tag string, config *oauth2.Config, profileURL string, decode ProfileDecoder) *Provider {
	return &Provider{tag: tag, config: config, profileURL: profileURL, decode: decode}
}

// Tag returns the provider type used in login routes.
func (p *Provider) Tag() string {
	return p.tag
}

// AuthURL returns the consent page URL carrying state.
func (p *Provider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for a provider token.
func (p *Provider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange %s code: %w", p.tag, err)
	}
	return token, nil
}

// Profile fetches the authenticated user's profile.
func (p *Provider) Profile(ctx context.Context, token *oauth2.Token) (model.Profile, error) {
	client := p.config.Client(ctx, token)

	var profile model.Profile
	err := getJSON(ctx, client, p.profileURL, func(body io.Reader) error {
		var err error
		profile, err = p.decode(body)
		return err
	})
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to fetch %s profile: %w", p.tag, err)
	}

	if p.enrich != nil {
		profile, err = p.enrich(ctx, client, profile)
		if err != nil {
			return model.Profile{}, fmt.Errorf("failed to complete %s profile: %w", p.tag, err)
		}
	}

	return profile, nil
}

func getJSON(ctx context.Context, client *http.Client, url string, read func(io.Reader) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return read(resp.Body)
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var v T
	err := json.NewDecoder(r).Decode(&v)
	return v, err
}
