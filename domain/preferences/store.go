package preferences

import "context"

// Store defines operations for persisting and retrieving preferences.
type Store interface {
	// Get returns the preference with the given key.
	Get(ctx context.Context, key string) (Preference, error)

	// Set writes a preference, replacing any existing value for the key.
	Set(ctx context.Context, key, value string) (Preference, error)

	// All returns every stored preference, ordered by key.
	All(ctx context.Context) ([]Preference, error)

	// Delete removes a preference. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error
}
