// Package inventory provides the domain model for meter and transformer
// receiving records: sheets, records, quantity resolution, and the store
// contracts the persistence layer implements.
package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meterlab/meterlab/domain/oor"
)

// RecordFields holds the editable columns of a receiving record. All
// fields are free text except Qty and UnitCost; dates stay in whatever
// format they were entered and are normalized only at display time.
type RecordFields struct {
	Status    string
	MFR       string
	DevCode   string
	BegSer    string
	EndSer    string
	OORSerial string
	Qty       int
	PODate    string
	PONumber  string
	RecvDate  string
	UnitCost  decimal.Decimal
	CID       string
	MENumber  string
	PurCode   string
	Est       string
	Use       string
	Notes1    string
	Notes2    string
}

// Record represents one receiving row on a sheet. This is an immutable
// value object identified by its ID once persisted.
type Record struct {
	id        int64
	sheet     Sheet
	fields    RecordFields
	qtySource QtySource
	createdAt time.Time
	updatedAt time.Time
}

// NewRecord creates a record for new instances (not yet persisted). The
// quantity is resolved through ResolveQty, so whatever Qty the caller
// supplied is overridden when OOR text or a serial range is present, and
// invalid OOR text fails the construction.
func NewRecord(sheet Sheet, fields RecordFields) (Record, error) {
	if sheet.IsZero() {
		return Record{}, fmt.Errorf("sheet is required")
	}
	qty, source, err := ResolveQty(fields.OORSerial, fields.BegSer, fields.EndSer, fields.Qty)
	if err != nil {
		return Record{}, err
	}
	fields.Qty = qty
	now := time.Now().UTC()
	return Record{
		id:        0,
		sheet:     sheet,
		fields:    fields,
		qtySource: source,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructRecord recreates a record from persistence (for store use).
// No validation or quantity resolution runs, so rows written before
// stricter rules still load.
func ReconstructRecord(id int64, sheet Sheet, fields RecordFields, createdAt, updatedAt time.Time) Record {
	return Record{
		id:        id,
		sheet:     sheet,
		fields:    fields,
		qtySource: deriveQtySource(fields),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// deriveQtySource classifies a persisted row without re-parsing its OOR
// text, which may predate strict validation.
func deriveQtySource(fields RecordFields) QtySource {
	if strings.TrimSpace(fields.OORSerial) != "" {
		return QtyFromOOR
	}
	if oor.QtyFromSerialRange(fields.BegSer, fields.EndSer) > 0 {
		return QtyFromSerials
	}
	return QtyManual
}

// ID returns the record's database identifier.
func (r Record) ID() int64 { return r.id }

// Sheet returns the sheet the record belongs to.
func (r Record) Sheet() Sheet { return r.sheet }

// Fields returns a copy of the record's editable columns.
func (r Record) Fields() RecordFields { return r.fields }

// QtySource reports where the record's quantity came from.
func (r Record) QtySource() QtySource { return r.qtySource }

// Status returns the status column.
func (r Record) Status() string { return r.fields.Status }

// MFR returns the manufacturer column.
func (r Record) MFR() string { return r.fields.MFR }

// DevCode returns the device code.
func (r Record) DevCode() string { return r.fields.DevCode }

// BegSer returns the beginning serial number.
func (r Record) BegSer() string { return r.fields.BegSer }

// EndSer returns the ending serial number.
func (r Record) EndSer() string { return r.fields.EndSer }

// OORSerial returns the raw OOR serial text.
func (r Record) OORSerial() string { return r.fields.OORSerial }

// Qty returns the resolved quantity.
func (r Record) Qty() int { return r.fields.Qty }

// PODate returns the purchase order date as entered.
func (r Record) PODate() string { return r.fields.PODate }

// PONumber returns the purchase order number.
func (r Record) PONumber() string { return r.fields.PONumber }

// RecvDate returns the received date as entered.
func (r Record) RecvDate() string { return r.fields.RecvDate }

// UnitCost returns the cost per unit.
func (r Record) UnitCost() decimal.Decimal { return r.fields.UnitCost }

// CID returns the CID column.
func (r Record) CID() string { return r.fields.CID }

// MENumber returns the M.E. number.
func (r Record) MENumber() string { return r.fields.MENumber }

// PurCode returns the purchase code.
func (r Record) PurCode() string { return r.fields.PurCode }

// Est returns the estimate column.
func (r Record) Est() string { return r.fields.Est }

// Use returns the use column.
func (r Record) Use() string { return r.fields.Use }

// Notes1 returns the first notes column.
func (r Record) Notes1() string { return r.fields.Notes1 }

// Notes2 returns the second notes column.
func (r Record) Notes2() string { return r.fields.Notes2 }

// CreatedAt returns when the record was created.
func (r Record) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns when the record was last updated.
func (r Record) UpdatedAt() time.Time { return r.updatedAt }

// Value returns the record's extended value, unit cost times quantity.
func (r Record) Value() decimal.Decimal {
	return r.fields.UnitCost.Mul(decimal.NewFromInt(int64(r.fields.Qty)))
}

// WithID returns a copy of the record with the specified ID.
func (r Record) WithID(id int64) Record {
	r.id = id
	return r
}

// WithFields returns a copy of the record with replacement columns. The
// quantity is resolved again, exactly as in NewRecord.
func (r Record) WithFields(fields RecordFields) (Record, error) {
	qty, source, err := ResolveQty(fields.OORSerial, fields.BegSer, fields.EndSer, fields.Qty)
	if err != nil {
		return Record{}, err
	}
	fields.Qty = qty
	r.fields = fields
	r.qtySource = source
	r.updatedAt = time.Now().UTC()
	return r, nil
}
