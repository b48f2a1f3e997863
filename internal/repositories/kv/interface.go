package kv

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/KirkDiggler/pinpoint/internal/repositories/kv Store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no value
var ErrNotFound = errors.New("key not found")

// Store is a small client-local string key-value store
type Store interface {
	// Get returns the value for key or ErrNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}
