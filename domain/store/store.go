package store

import "context"

// Store is the generic persistence contract implemented by entity
// stores. T is the domain entity type.
type Store[T any] interface {
	// Find returns all entities matching the given options.
	Find(ctx context.Context, options ...Option) ([]T, error)
	// FindOne returns the first entity matching the given options.
	FindOne(ctx context.Context, options ...Option) (T, error)
	// Exists reports whether any entity matches the given options.
	Exists(ctx context.Context, options ...Option) (bool, error)
	// Count returns the number of entities matching the given options.
	Count(ctx context.Context, options ...Option) (int64, error)
	// Save creates the entity when it has no identity yet, and updates
	// it otherwise. It returns the persisted entity.
	Save(ctx context.Context, entity T) (T, error)
	// Delete removes the entity.
	Delete(ctx context.Context, entity T) error
}
