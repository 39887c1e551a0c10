// Package kv provides the durable key-value storage behind cart and
// session persistence. It is the local-storage analogue: independent keys,
// opaque byte values, and no cross-key transactions required by callers.
package kv

import "context"

// Repository describes the persistence operations the stores rely on.
// Implementations are typically backed by a local SQLite database; tests
// use the in-memory variant.
type Repository interface {
	// Get returns the value stored under key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every stored key.
	Clear(ctx context.Context) error
}
