package inventory

import (
	"fmt"
	"strings"

	"github.com/meterlab/meterlab/domain/oor"
)

// QtySource records where a resolved quantity came from.
type QtySource int

const (
	// QtyManual means the quantity was entered by hand, or defaulted
	// to zero.
	QtyManual QtySource = iota
	// QtyFromSerials means the quantity was derived from the beginning
	// and ending serial numbers.
	QtyFromSerials
	// QtyFromOOR means the quantity was computed from OOR serial text.
	QtyFromOOR
)

func (s QtySource) String() string {
	switch s {
	case QtyFromSerials:
		return "serials"
	case QtyFromOOR:
		return "oor"
	default:
		return "manual"
	}
}

// ResolveQty determines a record's quantity. OOR serial text, when
// present, is authoritative: it either yields the quantity or fails the
// whole resolution. Without OOR text the serial range is tried next,
// and the manual quantity, floored at zero, is the final fallback.
func ResolveQty(oorText, begSer, endSer string, manual int) (int, QtySource, error) {
	if strings.TrimSpace(oorText) != "" {
		serial, err := oor.Parse(oorText)
		if err != nil {
			return 0, QtyManual, fmt.Errorf("resolve quantity: %w", err)
		}
		return serial.TotalQty(), QtyFromOOR, nil
	}
	if qty := oor.QtyFromSerialRange(begSer, endSer); qty > 0 {
		return qty, QtyFromSerials, nil
	}
	if manual < 0 {
		manual = 0
	}
	return manual, QtyManual, nil
}
