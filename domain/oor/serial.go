package oor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidText reports malformed OOR serial text. Errors returned by
// Parse wrap it with token context and match it via errors.Is.
var ErrInvalidText = errors.New("invalid OOR serial text")

// ValidationMessage is the fixed user-facing message for any OOR parse
// failure. It names the accepted syntaxes and is never token-specific.
const ValidationMessage = "Invalid OOR format. Use ranges (1000-1010) or singles (1050), separated by commas."

// ErrInvalidFormat carries ValidationMessage verbatim. Validate returns
// it for form-level feedback shown to the user before save.
var ErrInvalidFormat = errors.New(ValidationMessage)

// DefaultDisplayLength is the display width forms use with Display.
// Grid cells use a tighter width.
const DefaultDisplayLength = 50

// Serial is the immutable result of parsing OOR serial text: the
// intervals in input order plus their aggregate quantity. The zero
// value is a successful empty parse.
type Serial struct {
	entries  []Interval
	totalQty int
}

// Parse converts OOR serial text into a Serial.
//
// The text is split on commas and semicolons; each token is either a
// range "start-end" or a single serial number, with surrounding
// whitespace tolerated and empty tokens skipped. Empty or
// whitespace-only input is a successful empty parse, not an error.
//
// Parsing is fail-fast: any malformed token (non-integer part, reversed
// range, wrong hyphen count) fails the whole call and the returned
// Serial is empty. No partial results survive a failure.
func Parse(text string) (Serial, error) {
	if strings.TrimSpace(text) == "" {
		return Serial{}, nil
	}

	var (
		entries []Interval
		total   int
	)
	for _, token := range strings.FieldsFunc(text, isSeparator) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if strings.Contains(token, "-") {
			parts := strings.Split(token, "-")
			if len(parts) != 2 {
				return Serial{}, fmt.Errorf("range %q: %w", token, ErrInvalidText)
			}
			start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
			if err != nil {
				return Serial{}, fmt.Errorf("range start %q: %w", token, ErrInvalidText)
			}
			end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err != nil {
				return Serial{}, fmt.Errorf("range end %q: %w", token, ErrInvalidText)
			}
			if start > end {
				return Serial{}, fmt.Errorf("reversed range %q: %w", token, ErrInvalidText)
			}
			entries = append(entries, Interval{start: start, end: end})
			total += end - start + 1
			continue
		}

		n, err := strconv.Atoi(token)
		if err != nil {
			return Serial{}, fmt.Errorf("serial %q: %w", token, ErrInvalidText)
		}
		entries = append(entries, Single(n))
		total++
	}

	return Serial{entries: entries, totalQty: total}, nil
}

// Validate reports whether text would parse. On failure it returns
// ErrInvalidFormat, whose message is ValidationMessage.
func Validate(text string) error {
	if _, err := Parse(text); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// QtyFromSerialRange derives a quantity from a pair of free-text
// beginning/ending serial strings. All non-digit characters are
// stripped from each string independently before reading it as an
// integer, so formatted serials like "ABC-1000" are tolerated. Returns
// end - beg + 1 when beg > 0 and end >= beg, otherwise 0. Never fails.
//
// This is the deliberately lenient fallback estimator for records
// without OOR text. It is not Parse: strict parsing and lenient digit
// extraction stay separate.
func QtyFromSerialRange(begSer, endSer string) int {
	beg := extractDigits(begSer)
	end := extractDigits(endSer)
	if beg > 0 && end >= beg {
		return end - beg + 1
	}
	return 0
}

// Entries returns the parsed intervals in input order. The slice is a
// copy; mutating it does not affect the Serial.
func (s Serial) Entries() []Interval {
	out := make([]Interval, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of parsed intervals.
func (s Serial) Len() int { return len(s.entries) }

// TotalQty returns the sum of interval sizes across all entries.
func (s Serial) TotalQty() int { return s.totalQty }

// IsEmpty reports whether the parse produced no entries.
func (s Serial) IsEmpty() bool { return len(s.entries) == 0 }

// String reconstructs the full OOR text with normalized separators:
// entries joined with ", ", each rendered as "start-end" or "start".
// Re-parsing the result yields an equal Serial.
func (s Serial) String() string {
	parts := make([]string, len(s.entries))
	for i, e := range s.entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// Display renders the compact view: the full reconstruction when it
// fits within maxLength, otherwise the summary "<N> entries (<qty>)".
// An empty Serial displays as "".
func (s Serial) Display(maxLength int) string {
	if len(s.entries) == 0 {
		return ""
	}
	full := s.String()
	if len(full) <= maxLength {
		return full
	}
	return fmt.Sprintf("%d entries (%d)", len(s.entries), s.totalQty)
}

// Breakdown renders the detailed view: one 1-indexed line per entry
// with its item count, a blank line, then "Total: <qty> items". An
// empty Serial yields exactly "No entries".
func (s Serial) Breakdown() string {
	if len(s.entries) == 0 {
		return "No entries"
	}
	lines := make([]string, 0, len(s.entries)+1)
	for i, e := range s.entries {
		if e.IsSingle() {
			lines = append(lines, fmt.Sprintf("%d. %d (1 item)", i+1, e.Start()))
		} else {
			lines = append(lines, fmt.Sprintf("%d. %d-%d (%d items)", i+1, e.Start(), e.End(), e.Count()))
		}
	}
	lines = append(lines, fmt.Sprintf("\nTotal: %d items", s.totalQty))
	return strings.Join(lines, "\n")
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';'
}

func extractDigits(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}
