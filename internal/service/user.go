package service

import (
	"context"
	"fmt"

	"github.com/dtroode/pits-server/internal/logger"
	"github.com/dtroode/pits-server/internal/model"
)

type Users struct {
	users  model.UserStore
	logger *logger.Logger
}

func NewUsers(users model.UserStore, logger *logger.Logger) *Users {
	return &Users{users: users, logger: logger}
}

// Me returns the user owning the caller's session. A session without a user record is unauthorized.
func (u *Users) Me(ctx context.Context, caller model.ClientConfig) (model.User, error) {
	user, ok, err := u.users.Get(ctx, caller.Owner)
	if err != nil {
		u.logger.Error("User service: failed to get user",
			"email", caller.Owner,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !ok {
		return model.User{}, fmt.Errorf("%w: no user for session owner", model.ErrUnauthorized)
	}

	return user, nil
}
