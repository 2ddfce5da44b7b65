package ports

import (
	"context"
	"time"
)

// ObjectStore is the object-store capability the artifact gateway is built on.
// Implementations are constructed once at process start and shared.
//
// Every method returns an UpstreamError when the store itself fails.
type ObjectStore interface {
	// PresignPut returns a URL allowing a single PUT of key with contentType
	// until ttl elapses.
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)

	// PresignGet returns a URL allowing GETs of key until ttl elapses.
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)

	// List returns every key that starts with prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// PutJSON stores body under key with an application/json content type.
	PutJSON(ctx context.Context, key string, body []byte) error

	// GetJSON reads key back. Returns an ObjectNotFoundError when absent.
	GetJSON(ctx context.Context, key string) ([]byte, error)
}
