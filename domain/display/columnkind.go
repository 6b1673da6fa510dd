// Package display renders record cell values for grids and reports.
package display

// ColumnKind tags a column with its formatting behavior, replacing
// dispatch on raw column-name strings.
type ColumnKind int

const (
	// KindText renders values unchanged.
	KindText ColumnKind = iota
	// KindDate normalizes recognized date strings to MM/DD/YYYY.
	KindDate
	// KindCurrency renders numeric values as dollar amounts.
	KindCurrency
	// KindQty renders whole numbers with thousands separators.
	KindQty
	// KindOORSerial renders parseable OOR text in its compact form.
	KindOORSerial
)

func (k ColumnKind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindCurrency:
		return "currency"
	case KindQty:
		return "qty"
	case KindOORSerial:
		return "oor_serial"
	default:
		return "text"
	}
}

// KindForColumn maps a column name to its kind. Unknown names format as
// plain text.
func KindForColumn(name string) ColumnKind {
	switch name {
	case "PO Date", "Recv Date":
		return KindDate
	case "Unit Cost":
		return KindCurrency
	case "Qty":
		return KindQty
	case "OOR Serial":
		return KindOORSerial
	default:
		return KindText
	}
}
