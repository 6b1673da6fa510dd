package preferences

import (
	"testing"
	"time"
)

func TestNewPreference(t *testing.T) {
	p, err := NewPreference("last_sheet", "Ohio - Meters")
	if err != nil {
		t.Fatalf("NewPreference() error = %v, want nil", err)
	}
	if p.Key() != "last_sheet" {
		t.Errorf("Key() = %q, want %q", p.Key(), "last_sheet")
	}
	if p.Value() != "Ohio - Meters" {
		t.Errorf("Value() = %q, want %q", p.Value(), "Ohio - Meters")
	}
	if p.UpdatedAt().IsZero() {
		t.Error("UpdatedAt() is zero, want set")
	}
}

func TestNewPreference_TrimsKey(t *testing.T) {
	p, err := NewPreference("  theme ", "Dark")
	if err != nil {
		t.Fatalf("NewPreference() error = %v, want nil", err)
	}
	if p.Key() != "theme" {
		t.Errorf("Key() = %q, want %q", p.Key(), "theme")
	}
}

func TestNewPreference_EmptyKey(t *testing.T) {
	if _, err := NewPreference("", "x"); err == nil {
		t.Error("NewPreference with empty key: error = nil, want error")
	}
	if _, err := NewPreference("   ", "x"); err == nil {
		t.Error("NewPreference with blank key: error = nil, want error")
	}
}

func TestNewPreference_EmptyValueAllowed(t *testing.T) {
	p, err := NewPreference("last_sheet", "")
	if err != nil {
		t.Fatalf("NewPreference() error = %v, want nil", err)
	}
	if p.Value() != "" {
		t.Errorf("Value() = %q, want empty", p.Value())
	}
}

func TestReconstructPreference(t *testing.T) {
	updated := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	p := ReconstructPreference("theme", "Dark", updated)

	if p.Key() != "theme" {
		t.Errorf("Key() = %q, want %q", p.Key(), "theme")
	}
	if p.Value() != "Dark" {
		t.Errorf("Value() = %q, want %q", p.Value(), "Dark")
	}
	if !p.UpdatedAt().Equal(updated) {
		t.Errorf("UpdatedAt() = %v, want %v", p.UpdatedAt(), updated)
	}
}

func TestPreference_WithValue(t *testing.T) {
	p := ReconstructPreference("theme", "Light", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	q := p.WithValue("Dark")

	if q.Value() != "Dark" {
		t.Errorf("Value() = %q, want %q", q.Value(), "Dark")
	}
	if !q.UpdatedAt().After(p.UpdatedAt()) {
		t.Errorf("UpdatedAt() = %v, want after %v", q.UpdatedAt(), p.UpdatedAt())
	}
	if p.Value() != "Light" {
		t.Error("WithValue must not mutate the receiver")
	}
}
