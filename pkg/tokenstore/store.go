package tokenstore

import "context"

// Store is an ephemeral key-value store for session tokens.
// Reads and writes are atomic per key; there is no cross-key transaction
// because every token lives under its own independent key.
type Store interface {
	// Get retrieves a token by key.
	// Returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a token under the key for the lifetime of the store's session.
	Set(ctx context.Context, key, token string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes all keys.
	Clear(ctx context.Context) error

	// Close releases resources (stops background goroutines, etc.).
	Close() error
}
