package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/meterlab/meterlab/domain/inventory"
	"github.com/meterlab/meterlab/domain/store"
)

// RecordSaveParams configures saving a record. ID zero creates a new
// record; a non-zero ID updates the existing one in place.
type RecordSaveParams struct {
	ID     int64
	Sheet  inventory.Sheet
	Fields inventory.RecordFields
}

// RecordSearchParams configures a sheet-scoped record search. Empty
// filter fields are ignored; dev code and PO number match substrings,
// received date matches exactly.
type RecordSearchParams struct {
	Sheet    inventory.Sheet
	DevCode  string
	PONumber string
	RecvDate string
	Limit    int
	Offset   int
}

// Records provides record CRUD, search and statistics.
// Embeds Collection for Find/Get; bespoke methods handle writes.
type Records struct {
	store.Collection[inventory.Record]
	recordStore inventory.RecordStore
	logger      *slog.Logger
}

// NewRecords creates a new Records service.
func NewRecords(recordStore inventory.RecordStore, logger *slog.Logger) *Records {
	return &Records{
		Collection:  store.NewCollection[inventory.Record](recordStore),
		recordStore: recordStore,
		logger:      logger,
	}
}

// Save validates and persists a record. New records are placed on the
// given sheet; updates keep the sheet the record already lives on. The
// quantity cascade runs in both cases, so invalid OOR text blocks the
// write.
func (s *Records) Save(ctx context.Context, params RecordSaveParams) (inventory.Record, error) {
	var (
		record inventory.Record
		err    error
	)
	if params.ID == 0 {
		record, err = inventory.NewRecord(params.Sheet, params.Fields)
		if err != nil {
			return inventory.Record{}, err
		}
	} else {
		existing, getErr := s.recordStore.Get(ctx, params.ID)
		if getErr != nil {
			return inventory.Record{}, getErr
		}
		record, err = existing.WithFields(params.Fields)
		if err != nil {
			return inventory.Record{}, err
		}
	}

	saved, err := s.recordStore.Save(ctx, record)
	if err != nil {
		return inventory.Record{}, err
	}

	s.logger.Info("record saved",
		slog.Int64("id", saved.ID()),
		slog.String("sheet", saved.Sheet().Name()),
		slog.Int("qty", saved.Qty()),
		slog.String("qty_source", saved.QtySource().String()),
	)
	return saved, nil
}

// GetByID returns the record with the given ID.
func (s *Records) GetByID(ctx context.Context, id int64) (inventory.Record, error) {
	return s.recordStore.Get(ctx, id)
}

// Delete removes the record with the given ID.
func (s *Records) Delete(ctx context.Context, id int64) error {
	record, err := s.recordStore.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.recordStore.Delete(ctx, record); err != nil {
		return err
	}

	s.logger.Info("record deleted",
		slog.Int64("id", id),
		slog.String("sheet", record.Sheet().Name()),
	)
	return nil
}

// List returns every record on a sheet, newest first.
func (s *Records) List(ctx context.Context, sheet inventory.Sheet) ([]inventory.Record, error) {
	return s.recordStore.Find(ctx, inventory.WithSheet(sheet), inventory.WithOrderByID())
}

// Search returns the records on a sheet matching the given filters,
// newest first.
func (s *Records) Search(ctx context.Context, params RecordSearchParams) ([]inventory.Record, error) {
	opts := s.searchOptions(params)
	opts = append(opts, inventory.WithOrderByID())
	if params.Limit > 0 {
		opts = append(opts, store.WithPagination(params.Limit, params.Offset)...)
	}
	return s.recordStore.Find(ctx, opts...)
}

// SearchCount returns how many records on a sheet match the given
// filters, ignoring pagination.
func (s *Records) SearchCount(ctx context.Context, params RecordSearchParams) (int64, error) {
	return s.recordStore.Count(ctx, s.searchOptions(params)...)
}

func (s *Records) searchOptions(params RecordSearchParams) []store.Option {
	opts := []store.Option{inventory.WithSheet(params.Sheet)}
	if params.DevCode != "" {
		opts = append(opts, inventory.WithDevCode(params.DevCode))
	}
	if params.PONumber != "" {
		opts = append(opts, inventory.WithPONumber(params.PONumber))
	}
	if params.RecvDate != "" {
		opts = append(opts, inventory.WithRecvDate(params.RecvDate))
	}
	return opts
}

// Count returns the number of records on a sheet.
func (s *Records) Count(ctx context.Context, sheet inventory.Sheet) (int64, error) {
	return s.recordStore.Count(ctx, inventory.WithSheet(sheet))
}

// ClearSheet removes every record on a sheet and returns how many were
// deleted.
func (s *Records) ClearSheet(ctx context.Context, sheet inventory.Sheet) (int64, error) {
	deleted, err := s.recordStore.DeleteBySheet(ctx, sheet)
	if err != nil {
		return 0, fmt.Errorf("clear sheet %s: %w", sheet.Name(), err)
	}

	s.logger.Info("sheet cleared",
		slog.String("sheet", sheet.Name()),
		slog.Int64("deleted", deleted),
	)
	return deleted, nil
}

// Statistics returns aggregate statistics for one sheet.
func (s *Records) Statistics(ctx context.Context, sheet inventory.Sheet) (inventory.Stats, error) {
	return s.recordStore.Stats(ctx, sheet)
}

// CombinedStatistics returns statistics rolled up across several
// sheets, for dashboard-style grand totals.
func (s *Records) CombinedStatistics(ctx context.Context, sheets []inventory.Sheet) (inventory.Stats, error) {
	all := make([]inventory.Stats, 0, len(sheets))
	for _, sheet := range sheets {
		stats, err := s.recordStore.Stats(ctx, sheet)
		if err != nil {
			return inventory.Stats{}, fmt.Errorf("stats for %s: %w", sheet.Name(), err)
		}
		all = append(all, stats)
	}
	return inventory.CombineStats(all...), nil
}
