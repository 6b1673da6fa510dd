// Package preferences provides persisted key/value user settings, such
// as the last selected sheet.
package preferences

import (
	"fmt"
	"strings"
	"time"
)

// Well-known preference keys.
const (
	KeyLastSheet = "last_sheet"
	KeyTheme     = "theme"
)

// Preference is one stored setting. This is an immutable value object
// identified by its key.
type Preference struct {
	key       string
	value     string
	updatedAt time.Time
}

// NewPreference creates a preference for new instances (not yet
// persisted).
func NewPreference(key, value string) (Preference, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Preference{}, fmt.Errorf("preference key is required")
	}
	return Preference{key: key, value: value, updatedAt: time.Now().UTC()}, nil
}

// ReconstructPreference recreates a preference from persistence (for
// store use).
func ReconstructPreference(key, value string, updatedAt time.Time) Preference {
	return Preference{key: key, value: value, updatedAt: updatedAt}
}

// Key returns the preference key.
func (p Preference) Key() string { return p.key }

// Value returns the stored value.
func (p Preference) Value() string { return p.value }

// UpdatedAt returns when the preference was last written.
func (p Preference) UpdatedAt() time.Time { return p.updatedAt }

// WithValue returns a copy of the preference with a new value.
func (p Preference) WithValue(value string) Preference {
	p.value = value
	p.updatedAt = time.Now().UTC()
	return p
}
