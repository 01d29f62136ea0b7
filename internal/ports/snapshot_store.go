package ports

import "context"

// SnapshotStore is the durable key-value store shared by all contexts.
// It is not a lock: concurrent writers overwrite each other.
type SnapshotStore interface {
	// Get returns the stored value or domain.ErrSnapshotNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes the value, replacing any previous one
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
