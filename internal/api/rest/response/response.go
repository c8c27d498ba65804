package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/pits-server/internal/model"
	"github.com/dtroode/pits-server/internal/query"
)

// Error represents a structured error response.
type Error struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Common error codes.
const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeNotFound     = "not_found"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeUnavailable  = "service_unavailable"
	ErrCodeInternal     = "internal_error"
)

// JSON writes a JSON response with the given status code and payload.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // connection may already be closed
		json.NewEncoder(w).Encode(v)
	}
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, Error{
		Status:  status,
		Code:    code,
		Message: message,
	})
}

// FromError writes the error response matching the class of err.
// Store faults are reported without their details.
func FromError(w http.ResponseWriter, err error) {
	status, code := Classify(err)
	message := err.Error()
	switch status {
	case http.StatusServiceUnavailable:
		message = "storage temporarily unavailable"
	case http.StatusInternalServerError:
		message = "internal server error"
	case http.StatusUnauthorized:
		message = "unauthorized"
	}
	WriteError(w, status, code, message)
}

// Classify maps an error to an HTTP status and error code.
func Classify(err error) (int, string) {
	var repoErr *model.RepositoryError

	switch {
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized, ErrCodeUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, ErrCodeForbidden
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, model.ErrBadRequest),
		errors.Is(err, model.ErrUnknownProvider),
		errors.Is(err, query.ErrInvalidCursor):
		return http.StatusBadRequest, ErrCodeBadRequest
	case errors.As(err, &repoErr):
		return http.StatusServiceUnavailable, ErrCodeUnavailable
	default:
		return http.StatusInternalServerError, ErrCodeInternal
	}
}
