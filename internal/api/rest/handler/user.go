package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/pits-server/internal/api/rest/response"
	"github.com/dtroode/pits-server/internal/logger"
	"github.com/dtroode/pits-server/internal/model"
)

// UserService defines reads of the calling user.
type UserService interface {
	Me(ctx context.Context, caller model.ClientConfig) (model.User, error)
}

// User handles HTTP endpoints for the calling user.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{userService: userService, contextManager: contextManager, logger: logger}
}

// Me returns the user owning the session.
func (h *User) Me(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.contextManager.GetClientConfigFromContext(r.Context())
	if !ok {
		response.WriteError(w, http.StatusUnauthorized, response.ErrCodeUnauthorized, "unauthorized")
		return
	}

	user, err := h.userService.Me(r.Context(), caller)
	if err != nil {
		h.logger.Info("User handler: me failed",
			"owner", caller.Owner,
			"error", err.Error())
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, userResponse{User: toUserDTO(user)})
}
