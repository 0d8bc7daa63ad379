// Package storage implements the persistence gateway: a namespaced key-value
// layer over a durable local store, owning JSON serialization, availability
// detection, confession-status accessors and snapshot export/import.
package storage

import "context"

// KV describes the raw key-value backend underneath the Gateway.
// Implementations are backed by a local SQLite database or by memory.
type KV interface {
	// Get returns the value stored under key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error

	// List returns all stored key-value pairs.
	List(ctx context.Context) (map[string][]byte, error)
}
