package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/meterlab/meterlab/domain/preferences"
	"github.com/meterlab/meterlab/domain/store"
	"github.com/meterlab/meterlab/internal/database"
)

// PreferenceStore implements preferences.Store using GORM.
type PreferenceStore struct {
	database.Repository[preferences.Preference, PreferenceModel]
}

// NewPreferenceStore creates a new PreferenceStore.
func NewPreferenceStore(db database.Database) PreferenceStore {
	return PreferenceStore{
		Repository: database.NewRepository[preferences.Preference, PreferenceModel](db, PreferenceMapper{}, "preference"),
	}
}

// Get returns the preference with the given key.
func (s PreferenceStore) Get(ctx context.Context, key string) (preferences.Preference, error) {
	return s.FindOne(ctx, store.WithCondition("preference_key", key))
}

// Set writes a preference, replacing any existing value for the key.
func (s PreferenceStore) Set(ctx context.Context, key, value string) (preferences.Preference, error) {
	pref, err := preferences.NewPreference(key, value)
	if err != nil {
		return preferences.Preference{}, err
	}

	model := s.Mapper().ToModel(pref)
	result := s.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "preference_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"preference_value", "updated_at"}),
	}).Create(&model)
	if result.Error != nil {
		return preferences.Preference{}, fmt.Errorf("set preference: %w", result.Error)
	}

	return s.Mapper().ToDomain(model), nil
}

// All returns every stored preference ordered by key.
func (s PreferenceStore) All(ctx context.Context) ([]preferences.Preference, error) {
	var models []PreferenceModel
	db := database.NewQuery().
		OrderAsc("preference_key").
		Apply(s.DB(ctx))
	if result := db.Find(&models); result.Error != nil {
		return nil, fmt.Errorf("list preferences: %w", result.Error)
	}

	prefs := make([]preferences.Preference, len(models))
	for i, model := range models {
		prefs[i] = s.Mapper().ToDomain(model)
	}
	return prefs, nil
}

// Delete removes a preference. Deleting a missing key is not an error.
func (s PreferenceStore) Delete(ctx context.Context, key string) error {
	return s.DeleteBy(ctx, store.WithCondition("preference_key", key))
}
