package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested entity is absent or not visible to the caller.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the caller identity cannot be established.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the caller lacks the required device permission.
	ErrForbidden = errors.New("forbidden")
	// ErrBadRequest is returned for malformed request parameters.
	ErrBadRequest = errors.New("bad request")
	// ErrUnknownProvider is returned when an OAuth provider tag is not registered.
	ErrUnknownProvider = errors.New("unknown identity provider")
)

// Entity names a persisted entity kind.
type Entity string

const (
	EntityDevice       Entity = "Device"
	EntityUser         Entity = "User"
	EntityDeviceOwner  Entity = "DeviceOwner"
	EntityNonce        Entity = "Nonce"
	EntityClientConfig Entity = "ClientConfig"
	EntityCapture      Entity = "Capture"
)

// RepositoryError wraps any underlying store fault.
type RepositoryError struct {
	Entity Entity
	Err    error
}

// NewRepositoryError wraps err as a fault of the given entity store.
func NewRepositoryError(entity Entity, err error) *RepositoryError {
	return &RepositoryError{Entity: entity, Err: err}
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s repository: %v", e.Entity, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}
