// Package oor parses out-of-range serial text into integer intervals
// and renders compact and detailed views of the result.
package oor

import (
	"fmt"
	"strconv"
)

// Interval is a closed integer range [start, end] of serial numbers.
// A single serial is the degenerate case start == end. Immutable value
// object.
type Interval struct {
	start int
	end   int
}

// NewInterval creates an Interval, rejecting reversed bounds.
func NewInterval(start, end int) (Interval, error) {
	if start > end {
		return Interval{}, fmt.Errorf("reversed range %d-%d: %w", start, end, ErrInvalidText)
	}
	return Interval{start: start, end: end}, nil
}

// Single creates the degenerate Interval [n, n].
func Single(n int) Interval {
	return Interval{start: n, end: n}
}

// Start returns the first serial in the interval.
func (iv Interval) Start() int { return iv.start }

// End returns the last serial in the interval.
func (iv Interval) End() int { return iv.end }

// Count returns the number of serials covered, end - start + 1.
func (iv Interval) Count() int { return iv.end - iv.start + 1 }

// IsSingle reports whether the interval covers exactly one serial.
func (iv Interval) IsSingle() bool { return iv.start == iv.end }

// String renders the interval the way it appears in OOR text:
// "start-end" for ranges, "start" for singles.
func (iv Interval) String() string {
	if iv.IsSingle() {
		return strconv.Itoa(iv.start)
	}
	return fmt.Sprintf("%d-%d", iv.start, iv.end)
}
