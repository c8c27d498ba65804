package oauth

import (
	"context"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/amazon"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"

	"github.com/dtroode/pits-server/internal/model"
)

const (
	TagGoogle = "google"
	TagGitHub = "github"
	TagAmazon = "amazon"
)

const (
	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
	githubUserURL     = "https://api.github.com/user"
	githubEmailsURL   = "https://api.github.com/user/emails"
	amazonProfileURL  = "https://api.amazon.com/user/profile"
)

// Credentials are the client credentials registered with a provider.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// NewGoogle creates the Google OpenID Connect provider.
func NewGoogle(creds Credentials, redirectURL string) *Provider {
	return NewProvider(TagGoogle, &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  redirectURL,
		Scopes:       []string{"openid", "email", "profile"},
	}, googleUserInfoURL, decodeGoogleProfile)
}

func decodeGoogleProfile(r io.Reader) (model.Profile, error) {
	info, err := decodeJSON[struct {
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
		Picture    string `json:"picture"`
	}](r)
	if err != nil {
		return model.Profile{}, err
	}
	return model.Profile{Email: info.Email, FirstName: info.GivenName, LastName: info.FamilyName, Image: info.Picture}, nil
}

// NewGitHub creates the GitHub provider. Users with a private email get their
// primary verified address from the emails endpoint.
func NewGitHub(creds Credentials, redirectURL string) *Provider {
	p := NewProvider(TagGitHub, &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     github.Endpoint,
		RedirectURL:  redirectURL,
		Scopes:       []string{"read:user", "user:email"},
	}, githubUserURL, decodeGitHubProfile)
	p.enrich = githubPrimaryEmail(githubEmailsURL)
	return p
}

func decodeGitHubProfile(r io.Reader) (model.Profile, error) {
	info, err := decodeJSON[struct {
		Email     string `json:"email"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
	}](r)
	if err != nil {
		return model.Profile{}, err
	}
	first, last := splitName(info.Name)
	return model.Profile{Email: info.Email, FirstName: first, LastName: last, Image: info.AvatarURL}, nil
}

func githubPrimaryEmail(url string) func(context.Context, *http.Client, model.Profile) (model.Profile, error) {
	return func(ctx context.Context, client *http.Client, p model.Profile) (model.Profile, error) {
		if p.Email != "" {
			return p, nil
		}

		err := getJSON(ctx, client, url, func(body io.Reader) error {
			emails, err := decodeJSON[[]struct {
				Email    string `json:"email"`
				Primary  bool   `json:"primary"`
				Verified bool   `json:"verified"`
			}](body)
			if err != nil {
				return err
			}
			for _, e := range emails {
				if e.Primary && e.Verified {
					p.Email = e.Email
					break
				}
			}
			return nil
		})
		return p, err
	}
}

// NewAmazon creates the Login with Amazon provider.
func NewAmazon(creds Credentials, redirectURL string) *Provider {
	return NewProvider(TagAmazon, &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     amazon.Endpoint,
		RedirectURL:  redirectURL,
		Scopes:       []string{"profile"},
	}, amazonProfileURL, decodeAmazonProfile)
}

func decodeAmazonProfile(r io.Reader) (model.Profile, error) {
	info, err := decodeJSON[struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}](r)
	if err != nil {
		return model.Profile{}, err
	}
	first, last := splitName(info.Name)
	return model.Profile{Email: info.Email, FirstName: first, LastName: last}, nil
}

func splitName(name string) (string, string) {
	first, last, _ := strings.Cut(strings.TrimSpace(name), " ")
	return first, strings.TrimSpace(last)
}
