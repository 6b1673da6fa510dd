package oor

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		entries [][2]int
		qty     int
	}{
		{"empty", "", nil, 0},
		{"whitespace only", "   ", nil, 0},
		{"single range", "1000-1010", [][2]int{{1000, 1010}}, 11},
		{"single number", "1050", [][2]int{{1050, 1050}}, 1},
		{"combination", "1000-1010, 1050, 2000-2005", [][2]int{{1000, 1010}, {1050, 1050}, {2000, 2005}}, 18},
		{"degenerate range", "5-5", [][2]int{{5, 5}}, 1},
		{"semicolon separators", "1000-1010;1050", [][2]int{{1000, 1010}, {1050, 1050}}, 12},
		{"mixed separators", "1;2,3", [][2]int{{1, 1}, {2, 2}, {3, 3}}, 3},
		{"whitespace inside range", " 1000 - 1010 ", [][2]int{{1000, 1010}}, 11},
		{"trailing separator", "1000-1010,", [][2]int{{1000, 1010}}, 11},
		{"duplicate separators", "1,,2", [][2]int{{1, 1}, {2, 2}}, 2},
		{"blank token between separators", "1, ,2", [][2]int{{1, 1}, {2, 2}}, 2},
		{"input order preserved", "2000-2005, 1000-1010", [][2]int{{2000, 2005}, {1000, 1010}}, 17},
		{"duplicates kept", "5, 5", [][2]int{{5, 5}, {5, 5}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v, want nil", tt.text, err)
			}
			if s.TotalQty() != tt.qty {
				t.Errorf("TotalQty() = %d, want %d", s.TotalQty(), tt.qty)
			}
			if s.Len() != len(tt.entries) {
				t.Fatalf("Len() = %d, want %d", s.Len(), len(tt.entries))
			}
			for i, e := range s.Entries() {
				if e.Start() != tt.entries[i][0] || e.End() != tt.entries[i][1] {
					t.Errorf("entry %d = [%d, %d], want [%d, %d]",
						i, e.Start(), e.End(), tt.entries[i][0], tt.entries[i][1])
				}
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"reversed range", "10-5"},
		{"letters", "abc"},
		{"too many hyphens", "1-2-3"},
		{"open range", "1-"},
		{"bare hyphen", "-"},
		{"negative single via hyphen", "-5"},
		{"non-numeric range end", "1000-abc"},
		{"decimal", "12.5"},
		{"space inside number", "1 2"},
		{"valid then invalid token", "1000-1010, abc"},
		{"invalid then valid token", "abc, 1000-1010"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.text)
			if err == nil {
				t.Fatalf("Parse(%q) error = nil, want error", tt.text)
			}
			if !errors.Is(err, ErrInvalidText) {
				t.Errorf("errors.Is(err, ErrInvalidText) = false for %v", err)
			}
			if !s.IsEmpty() || s.TotalQty() != 0 {
				t.Errorf("failed parse kept state: entries = %d, qty = %d", s.Len(), s.TotalQty())
			}
		})
	}
}

func TestParse_TotalQtyMatchesEntrySizes(t *testing.T) {
	inputs := []string{
		"1000-1010",
		"1050",
		"1000-1010, 1050, 2000-2005",
		"5-5; 7; 9-12",
	}
	for _, text := range inputs {
		s, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", text, err)
		}
		sum := 0
		for _, e := range s.Entries() {
			sum += e.Count()
		}
		if sum != s.TotalQty() {
			t.Errorf("Parse(%q): sum of entry sizes = %d, TotalQty() = %d", text, sum, s.TotalQty())
		}
	}
}

func TestParse_Idempotent(t *testing.T) {
	const text = "1000-1010, 1050, 2000-2005"
	first, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	second, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(first.Entries(), second.Entries()) {
		t.Error("repeated Parse of the same text produced different entries")
	}
	if first.TotalQty() != second.TotalQty() {
		t.Errorf("TotalQty() differs: %d vs %d", first.TotalQty(), second.TotalQty())
	}
}

func TestSerial_ZeroValue(t *testing.T) {
	var s Serial
	if s.TotalQty() != 0 {
		t.Errorf("TotalQty() = %d, want 0", s.TotalQty())
	}
	if !s.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
	if s.Display(DefaultDisplayLength) != "" {
		t.Errorf("Display() = %q, want empty", s.Display(DefaultDisplayLength))
	}
	if s.Breakdown() != "No entries" {
		t.Errorf("Breakdown() = %q, want %q", s.Breakdown(), "No entries")
	}
}

func TestSerial_EntriesIsACopy(t *testing.T) {
	s, err := Parse("1000-1010, 1050")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	entries := s.Entries()
	entries[0] = Single(1)
	if got := s.Entries()[0]; got.Start() != 1000 || got.End() != 1010 {
		t.Errorf("mutating the returned slice changed the Serial: entry 0 = %v", got)
	}
}

func TestSerial_Display(t *testing.T) {
	s, err := Parse("1000-1010, 1050, 2000-2005")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	full := s.Display(DefaultDisplayLength)
	if full != "1000-1010, 1050, 2000-2005" {
		t.Errorf("Display(50) = %q, want full reconstruction", full)
	}

	compact := s.Display(10)
	if compact != "3 entries (18)" {
		t.Errorf("Display(10) = %q, want %q", compact, "3 entries (18)")
	}
}

func TestSerial_DisplayRoundTrip(t *testing.T) {
	inputs := []string{
		"1000-1010",
		"1050 ; 2000-2005",
		"5-5,7",
	}
	for _, text := range inputs {
		s, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", text, err)
		}
		again, err := Parse(s.Display(DefaultDisplayLength))
		if err != nil {
			t.Fatalf("re-parsing Display output of %q failed: %v", text, err)
		}
		if again.TotalQty() != s.TotalQty() {
			t.Errorf("round trip of %q: qty %d, want %d", text, again.TotalQty(), s.TotalQty())
		}
	}
}

func TestSerial_DisplaySummaryShape(t *testing.T) {
	parts := make([]string, 20)
	for i := range parts {
		parts[i] = fmt.Sprintf("%d", 1000+i*10)
	}
	s, err := Parse(strings.Join(parts, ", "))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got := s.Display(10)
	want := fmt.Sprintf("%d entries (%d)", s.Len(), s.TotalQty())
	if got != want {
		t.Errorf("Display(10) = %q, want %q", got, want)
	}
}

func TestSerial_Breakdown(t *testing.T) {
	s, err := Parse("1000-1010, 1050")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := "1. 1000-1010 (11 items)\n" +
		"2. 1050 (1 item)\n" +
		"\n" +
		"Total: 12 items"
	if got := s.Breakdown(); got != want {
		t.Errorf("Breakdown() = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("1000-1010, 1050"); err != nil {
		t.Errorf("Validate(valid) = %v, want nil", err)
	}
	if err := Validate(""); err != nil {
		t.Errorf("Validate(empty) = %v, want nil", err)
	}

	err := Validate("1-2-3")
	if err == nil {
		t.Fatal("Validate(invalid) = nil, want error")
	}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("errors.Is(err, ErrInvalidFormat) = false for %v", err)
	}
	if err.Error() != ValidationMessage {
		t.Errorf("error message = %q, want %q", err.Error(), ValidationMessage)
	}
}

func TestQtyFromSerialRange(t *testing.T) {
	tests := []struct {
		name string
		beg  string
		end  string
		want int
	}{
		{"plain numbers", "1000", "1010", 11},
		{"alpha prefixes stripped", "A1000", "A1010", 11},
		{"formatted serials", "ABC-1000", "ABC-1010", 11},
		{"equal serials", "1000", "1000", 1},
		{"both empty", "", "", 0},
		{"no digits", "abc", "def", 0},
		{"end before beg", "1010", "1000", 0},
		{"zero beginning", "0", "5", 0},
		{"beg empty", "", "1010", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QtyFromSerialRange(tt.beg, tt.end); got != tt.want {
				t.Errorf("QtyFromSerialRange(%q, %q) = %d, want %d", tt.beg, tt.end, got, tt.want)
			}
		})
	}
}
