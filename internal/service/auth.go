package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/pits-server/internal/logger"
	"github.com/dtroode/pits-server/internal/model"
)

// ProviderRegistry finds identity providers by their type tag.
type ProviderRegistry interface {
	Lookup(tag string) (model.IdentityProvider, bool)
}

// Auth runs the OAuth login flow and issues console sessions.
type Auth struct {
	providers ProviderRegistry
	nonces    model.NonceStore
	users     model.UserStore
	configs   model.ClientConfigStore
	tokens    model.TokenManager
	logger    *logger.Logger
	now       func() time.Time
}

func NewAuth(
	providers ProviderRegistry,
	nonces model.NonceStore,
	users model.UserStore,
	configs model.ClientConfigStore,
	tokens model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		providers: providers,
		nonces:    nonces,
		users:     users,
		configs:   configs,
		tokens:    tokens,
		logger:    logger,
		now:       time.Now,
	}
}

// HasProvider reports whether tag names a registered identity provider.
func (a *Auth) HasProvider(tag string) bool {
	_, ok := a.providers.Lookup(tag)
	return ok
}

// AuthURL issues a nonce scoped to providerType and returns the provider's consent URL.
func (a *Auth) AuthURL(ctx context.Context, providerType string) (string, error) {
	provider, ok := a.providers.Lookup(providerType)
	if !ok {
		a.logger.Info("Auth service: unknown identity provider",
			"type", providerType)
		return "", fmt.Errorf("%w: %q", model.ErrUnknownProvider, providerType)
	}

	now := a.now()
	nonce := model.Nonce{
		ID:        uuid.NewString(),
		Scope:     providerType,
		CreatedAt: now,
		ExpiresAt: now.Add(model.NonceDuration),
	}
	if err := a.nonces.Create(ctx, nonce); err != nil {
		a.logger.Error("Auth service: failed to create nonce",
			"type", providerType,
			"error", err.Error())
		return "", fmt.Errorf("failed to create nonce: %w", err)
	}

	return provider.AuthURL(nonce.ID), nil
}

// CompleteAuth verifies an OAuth callback and returns a session for the
// authenticated user. Every rejection is reported as model.ErrUnauthorized;
// store faults are returned as they are.
func (a *Auth) CompleteAuth(ctx context.Context, cb model.AuthCallback) (model.Session, error) {
	a.logger.Debug("Auth service: completing login",
		"type", cb.Type)

	if cb.Error != "" {
		a.logger.Info("Auth service: identity provider reported an error",
			"type", cb.Type,
			"provider_error", cb.Error)
		return model.Session{}, fmt.Errorf("%w: provider error %q", model.ErrUnauthorized, cb.Error)
	}

	provider, ok := a.providers.Lookup(cb.Type)
	if !ok {
		a.logger.Info("Auth service: unknown identity provider",
			"type", cb.Type)
		return model.Session{}, fmt.Errorf("%w: unknown provider %q", model.ErrUnauthorized, cb.Type)
	}

	consumed, err := a.nonces.Consume(ctx, cb.Nonce, cb.Type)
	if err != nil {
		a.logger.Error("Auth service: failed to consume nonce",
			"type", cb.Type,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to consume nonce: %w", err)
	}
	if !consumed {
		a.logger.Info("Auth service: nonce rejected",
			"type", cb.Type)
		return model.Session{}, fmt.Errorf("%w: invalid nonce", model.ErrUnauthorized)
	}

	profile, err := a.fetchProfile(ctx, provider, cb.Code)
	if err != nil {
		a.logger.Info("Auth service: failed to fetch profile",
			"type", cb.Type,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("%w: %w", model.ErrUnauthorized, err)
	}

	user, err := a.resolveUser(ctx, profile)
	if err != nil {
		return model.Session{}, err
	}

	cfg, err := a.resolveSessionConfig(ctx, user.Email)
	if err != nil {
		return model.Session{}, err
	}

	session, err := a.tokens.Generate(cfg)
	if err != nil {
		a.logger.Error("Auth service: failed to generate session token",
			"email", user.Email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"type", cb.Type,
		"email", user.Email)

	return session, nil
}

func (a *Auth) fetchProfile(ctx context.Context, provider model.IdentityProvider, code string) (model.Profile, error) {
	token, err := provider.Exchange(ctx, code)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to exchange code: %w", err)
	}

	profile, err := provider.Profile(ctx, token)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile.Email == "" {
		return model.Profile{}, errors.New("profile has no email")
	}

	return profile, nil
}

// resolveUser keeps the stored record of a returning user as is and saves it again.
func (a *Auth) resolveUser(ctx context.Context, profile model.Profile) (model.User, error) {
	user, ok, err := a.users.Get(ctx, profile.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to get user",
			"email", profile.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !ok {
		user = profile.User()
	}

	if err := a.users.Save(ctx, user); err != nil {
		a.logger.Error("Auth service: failed to save user",
			"email", profile.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	return user, nil
}

func (a *Auth) resolveSessionConfig(ctx context.Context, owner string) (model.ClientConfig, error) {
	configs, err := a.configs.ListByOwner(ctx, owner)
	if err != nil {
		a.logger.Error("Auth service: failed to list client configs",
			"email", owner,
			"error", err.Error())
		return model.ClientConfig{}, fmt.Errorf("failed to list client configs: %w", err)
	}
	for _, cfg := range configs {
		if cfg.API == model.SessionAPI {
			return cfg, nil
		}
	}

	cfg, err := a.configs.Create(ctx, model.ClientConfig{
		ClientID:  uuid.NewString(),
		API:       model.SessionAPI,
		Owner:     owner,
		Scopes:    []string{model.DefaultSessionGrant},
		CreatedAt: a.now(),
	})
	if err != nil {
		a.logger.Error("Auth service: failed to create client config",
			"email", owner,
			"error", err.Error())
		return model.ClientConfig{}, fmt.Errorf("failed to create client config: %w", err)
	}

	return cfg, nil
}
