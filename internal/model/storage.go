package model

import (
	"context"
	"time"
)

// ObjectStorage gives read access to device captures.
type ObjectStorage interface {
	Exists(ctx context.Context, key string) (bool, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
