package display

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meterlab/meterlab/domain/oor"
)

// GridOORLength is the compact display width used for OOR serial cells.
const GridOORLength = 30

// dateLayouts are the accepted input formats, tried in order. Unpadded
// month and day are tolerated.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/2006",
	"1/2/06",
}

// dateOutputLayout is the uniform rendering for recognized dates.
const dateOutputLayout = "01/02/2006"

// FormatCell renders a raw cell value for a column kind. Values that do
// not fit the kind (an unparseable date, non-numeric cost) pass through
// unchanged rather than erroring, since grids must render whatever is
// stored.
func FormatCell(kind ColumnKind, value string) string {
	if value == "" {
		return ""
	}
	switch kind {
	case KindDate:
		return formatDate(value)
	case KindCurrency:
		return formatCurrency(value)
	case KindQty:
		return formatQty(value)
	case KindOORSerial:
		return formatOORSerial(value)
	default:
		return value
	}
}

// TooltipForOOR returns the detailed breakdown for hover text. Blank or
// unparseable text yields no tooltip.
func TooltipForOOR(text string) string {
	serial, err := oor.Parse(text)
	if err != nil || serial.IsEmpty() {
		return ""
	}
	return serial.Breakdown()
}

func formatDate(value string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(dateOutputLayout)
		}
	}
	return value
}

func formatCurrency(value string) string {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return value
	}
	return "$" + groupThousands(d.StringFixed(2))
}

func formatQty(value string) string {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return value
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func formatOORSerial(value string) string {
	serial, err := oor.Parse(value)
	if err != nil {
		return value
	}
	return serial.Display(GridOORLength)
}

// groupThousands inserts commas into the integer part of a plain
// decimal string, preserving sign and fraction.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	n := len(intPart)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	out := b.String()
	if hasFrac {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}
