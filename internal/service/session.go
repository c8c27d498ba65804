package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtroode/pits-server/internal/logger"
	"github.com/dtroode/pits-server/internal/model"
)

const bearerPrefix = "Bearer "

// Sessions resolves presented bearer credentials to session client configs.
type Sessions struct {
	tokens  model.TokenManager
	configs model.ClientConfigStore
	logger  *logger.Logger
}

func NewSessions(tokens model.TokenManager, configs model.ClientConfigStore, logger *logger.Logger) *Sessions {
	return &Sessions{
		tokens:  tokens,
		configs: configs,
		logger:  logger,
	}
}

// Resolve returns the session client config the authorization value was issued for.
// A missing header, an unknown token or a missing config yields no identity and no error.
func (s *Sessions) Resolve(ctx context.Context, authorization string) (model.ClientConfig, bool, error) {
	token, _ := strings.CutPrefix(authorization, bearerPrefix)
	if token == "" {
		return model.ClientConfig{}, false, nil
	}

	clientID, ok := s.tokens.Lookup(token, model.SessionAPI)
	if !ok {
		s.logger.Debug("Session service: token not recognized")
		return model.ClientConfig{}, false, nil
	}

	cfg, ok, err := s.configs.Get(ctx, model.SessionAPI, clientID)
	if err != nil {
		s.logger.Error("Session service: failed to get client config",
			"client_id", clientID,
			"error", err.Error())
		return model.ClientConfig{}, false, fmt.Errorf("failed to get client config: %w", err)
	}
	if !ok {
		s.logger.Debug("Session service: client config not found",
			"client_id", clientID)
		return model.ClientConfig{}, false, nil
	}

	return cfg, true, nil
}
