package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/pits-server/internal/api/rest/response"
	"github.com/dtroode/pits-server/internal/logger"
)

// Pinger checks that a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles the liveness endpoint.
type Health struct {
	pinger Pinger
	logger *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(pinger Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

// Check reports healthy when the database answers a ping.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(r.Context()); err != nil {
		h.logger.Error("Health handler: database ping failed",
			"error", err.Error())
		response.WriteError(w, http.StatusServiceUnavailable, response.ErrCodeUnavailable, "database unavailable")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
