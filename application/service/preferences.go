package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/meterlab/meterlab/domain/preferences"
	"github.com/meterlab/meterlab/internal/database"
)

// Preferences provides typed access to persisted user preferences and
// the edit-mode passcode gate.
type Preferences struct {
	prefStore        preferences.Store
	editPasscodeHash string
}

// NewPreferences creates a new Preferences service. editPasscodeHash is
// the MD5 hex digest that unlocks edit mode.
func NewPreferences(prefStore preferences.Store, editPasscodeHash string) *Preferences {
	return &Preferences{
		prefStore:        prefStore,
		editPasscodeHash: strings.ToLower(editPasscodeHash),
	}
}

// Get returns the stored value for a key, or the given default when the
// key has never been set.
func (s *Preferences) Get(ctx context.Context, key, defaultValue string) (string, error) {
	pref, err := s.prefStore.Get(ctx, key)
	if errors.Is(err, database.ErrNotFound) {
		return defaultValue, nil
	}
	if err != nil {
		return "", err
	}
	return pref.Value(), nil
}

// Set stores a preference value, replacing any existing one.
func (s *Preferences) Set(ctx context.Context, key, value string) error {
	_, err := s.prefStore.Set(ctx, key, value)
	return err
}

// Delete removes a preference. Deleting a missing key is not an error.
func (s *Preferences) Delete(ctx context.Context, key string) error {
	return s.prefStore.Delete(ctx, key)
}

// All returns every stored preference ordered by key.
func (s *Preferences) All(ctx context.Context) ([]preferences.Preference, error) {
	return s.prefStore.All(ctx)
}

// LastSheet returns the most recently used sheet name, or "" when none
// has been recorded.
func (s *Preferences) LastSheet(ctx context.Context) (string, error) {
	return s.Get(ctx, preferences.KeyLastSheet, "")
}

// SetLastSheet records the most recently used sheet name.
func (s *Preferences) SetLastSheet(ctx context.Context, sheetName string) error {
	return s.Set(ctx, preferences.KeyLastSheet, sheetName)
}

// VerifyEditPasscode reports whether a passcode unlocks edit mode. The
// configured digest is MD5, kept compatible with hashes carried over
// from earlier deployments.
func (s *Preferences) VerifyEditPasscode(passcode string) bool {
	sum := md5.Sum([]byte(passcode))
	return hex.EncodeToString(sum[:]) == s.editPasscodeHash
}
