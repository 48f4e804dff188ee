package repository

import "context"

// Local storage keys.
const (
	KeySearches = "searches"
	KeyWishlist = "wishlist"
)

// UpdateFunc computes a new value from the current one. ok is false when the key
// has never been written. Returning an error aborts the update.
type UpdateFunc func(current string, ok bool) (string, error)

// KeyValueStore is the client-local string store the typed repositories sit on.
type KeyValueStore interface {
	// GetItem returns the raw value for key and whether it exists.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem overwrites the raw value for key.
	SetItem(ctx context.Context, key, value string) error

	// UpdateItem runs fn and writes its result as one atomic read-modify-write.
	UpdateItem(ctx context.Context, key string, fn UpdateFunc) error
}
