package inventory

import (
	"context"

	"github.com/meterlab/meterlab/domain/store"
)

// RecordStore defines operations for persisting and retrieving
// receiving records.
type RecordStore interface {
	store.Store[Record]

	// Get returns the record with the given ID.
	Get(ctx context.Context, id int64) (Record, error)

	// SaveAll persists a batch of new records in a single transaction.
	// Either every record is written or none are.
	SaveAll(ctx context.Context, records []Record) ([]Record, error)

	// DeleteBySheet removes every record on a sheet and returns how many
	// were deleted.
	DeleteBySheet(ctx context.Context, sheet Sheet) (int64, error)

	// Stats returns aggregate statistics for one sheet.
	Stats(ctx context.Context, sheet Sheet) (Stats, error)
}
