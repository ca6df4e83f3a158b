package model

import "context"

// Storage is a client-scoped key-value slot. Implementations must be safe
// for concurrent use; the last Set for a key wins.
type Storage interface {
	// Get returns the value under key; found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set overwrites the value under key.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
