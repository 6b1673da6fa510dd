package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/meterlab/meterlab/domain/store"
)

// ErrNotFound indicates the requested entity was not found.
var ErrNotFound = errors.New("entity not found")

// EntityMapper converts between a domain type and its database model.
type EntityMapper[D any, E any] interface {
	ToDomain(entity E) D
	ToModel(domain D) E
}

// Repository implements the shared half of every entity store:
// option-driven lookups, counting, and deletion, with mapping between
// domain and model types. Entity stores embed it and add their writes.
type Repository[D any, E any] struct {
	db     Database
	mapper EntityMapper[D, E]
	entity string
}

// NewRepository creates a Repository. entity names the stored thing in
// error messages ("record", "preference").
func NewRepository[D any, E any](db Database, mapper EntityMapper[D, E], entity string) Repository[D, E] {
	return Repository[D, E]{db: db, mapper: mapper, entity: entity}
}

// DB returns a GORM session for store methods that need direct access.
func (r Repository[D, E]) DB(ctx context.Context) *gorm.DB {
	return r.db.Session(ctx)
}

// Database returns the underlying database handle, for callers that
// need transactions spanning several writes.
func (r Repository[D, E]) Database() Database {
	return r.db
}

// Mapper returns the entity mapper.
func (r Repository[D, E]) Mapper() EntityMapper[D, E] {
	return r.mapper
}

// Find retrieves entities matching the given options.
func (r Repository[D, E]) Find(ctx context.Context, options ...store.Option) ([]D, error) {
	var entities []E
	db := ApplyOptions(r.DB(ctx).Model(new(E)), options...)
	if result := db.Find(&entities); result.Error != nil {
		return nil, fmt.Errorf("find %s: %w", r.entity, result.Error)
	}

	domains := make([]D, len(entities))
	for i, entity := range entities {
		domains[i] = r.mapper.ToDomain(entity)
	}
	return domains, nil
}

// FindOne retrieves the first entity matching the given options.
func (r Repository[D, E]) FindOne(ctx context.Context, options ...store.Option) (D, error) {
	var zero D
	var entity E
	db := ApplyOptions(r.DB(ctx), options...)
	if result := db.First(&entity); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return zero, fmt.Errorf("%w: %s", ErrNotFound, r.entity)
		}
		return zero, fmt.Errorf("find one %s: %w", r.entity, result.Error)
	}
	return r.mapper.ToDomain(entity), nil
}

// Count returns the number of entities matching the given options.
func (r Repository[D, E]) Count(ctx context.Context, options ...store.Option) (int64, error) {
	var count int64
	db := ApplyConditions(r.DB(ctx).Model(new(E)), options...)
	if result := db.Count(&count); result.Error != nil {
		return 0, fmt.Errorf("count %s: %w", r.entity, result.Error)
	}
	return count, nil
}

// Exists reports whether any entity matches the given options.
func (r Repository[D, E]) Exists(ctx context.Context, options ...store.Option) (bool, error) {
	count, err := r.Count(ctx, options...)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteBy removes every entity matching the given options. Ordering
// and pagination options are ignored.
func (r Repository[D, E]) DeleteBy(ctx context.Context, options ...store.Option) error {
	db := ApplyConditions(r.DB(ctx), options...)
	if result := db.Delete(new(E)); result.Error != nil {
		return fmt.Errorf("delete %s: %w", r.entity, result.Error)
	}
	return nil
}
