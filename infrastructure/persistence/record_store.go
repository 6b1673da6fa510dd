package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/meterlab/meterlab/domain/inventory"
	"github.com/meterlab/meterlab/domain/store"
	"github.com/meterlab/meterlab/internal/database"
)

// RecordStore implements inventory.RecordStore using GORM.
type RecordStore struct {
	database.Repository[inventory.Record, RecordModel]
}

// NewRecordStore creates a new RecordStore.
func NewRecordStore(db database.Database) RecordStore {
	return RecordStore{
		Repository: database.NewRepository[inventory.Record, RecordModel](db, RecordMapper{}, "record"),
	}
}

// Save creates or updates a record.
func (s RecordStore) Save(ctx context.Context, r inventory.Record) (inventory.Record, error) {
	model := s.Mapper().ToModel(r)
	now := time.Now().UTC()

	if model.ID == 0 {
		model.CreatedAt = now
		model.UpdatedAt = now
		result := s.DB(ctx).Create(&model)
		if result.Error != nil {
			return inventory.Record{}, fmt.Errorf("create record: %w", result.Error)
		}
	} else {
		model.UpdatedAt = now
		result := s.DB(ctx).Save(&model)
		if result.Error != nil {
			return inventory.Record{}, fmt.Errorf("update record: %w", result.Error)
		}
	}

	return s.Mapper().ToDomain(model), nil
}

// SaveAll persists a batch of new records in a single transaction.
// Either every record is written or none are.
func (s RecordStore) SaveAll(ctx context.Context, records []inventory.Record) ([]inventory.Record, error) {
	if len(records) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	models := make([]RecordModel, len(records))
	for i, r := range records {
		model := s.Mapper().ToModel(r)
		model.CreatedAt = now
		model.UpdatedAt = now
		models[i] = model
	}

	err := database.WithTransaction(ctx, s.Database(), func(tx *gorm.DB) error {
		for i := range models {
			if result := tx.Create(&models[i]); result.Error != nil {
				return fmt.Errorf("create record %d: %w", i+1, result.Error)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	saved := make([]inventory.Record, len(models))
	for i, model := range models {
		saved[i] = s.Mapper().ToDomain(model)
	}
	return saved, nil
}

// Delete removes a record.
func (s RecordStore) Delete(ctx context.Context, r inventory.Record) error {
	model := s.Mapper().ToModel(r)
	result := s.DB(ctx).Delete(&model)
	if result.Error != nil {
		return fmt.Errorf("delete record: %w", result.Error)
	}
	return nil
}

// Get returns the record with the given ID.
func (s RecordStore) Get(ctx context.Context, id int64) (inventory.Record, error) {
	return s.FindOne(ctx, store.WithID(id))
}

// DeleteBySheet removes every record on a sheet and returns how many
// were deleted.
func (s RecordStore) DeleteBySheet(ctx context.Context, sheet inventory.Sheet) (int64, error) {
	result := s.DB(ctx).
		Where("op_co = ?", sheet.OpCo()).
		Where("device_type = ?", sheet.DeviceType()).
		Delete(&RecordModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete sheet records: %w", result.Error)
	}
	return result.RowsAffected, nil
}

type statsRow struct {
	Qty      int64
	UnitCost string
}

// Stats returns aggregate statistics for one sheet. Row counting and
// quantity sums could run in SQL, but the money columns are stored as
// decimal strings, so the arithmetic happens here to keep cents exact
// on every database engine.
func (s RecordStore) Stats(ctx context.Context, sheet inventory.Sheet) (inventory.Stats, error) {
	var rows []statsRow
	db := database.NewQuery().
		Equal("op_co", sheet.OpCo()).
		Equal("device_type", sheet.DeviceType()).
		Apply(s.DB(ctx).Model(&RecordModel{}))
	if err := db.Select("qty", "unit_cost").Scan(&rows).Error; err != nil {
		return inventory.Stats{}, fmt.Errorf("sheet stats: %w", err)
	}

	var (
		totalQty   int64
		totalValue = decimal.Zero
		costSum    = decimal.Zero
		costCount  int64
	)
	for _, row := range rows {
		totalQty += row.Qty
		cost, err := decimal.NewFromString(row.UnitCost)
		if err != nil {
			continue
		}
		totalValue = totalValue.Add(cost.Mul(decimal.NewFromInt(row.Qty)))
		if cost.IsPositive() {
			costSum = costSum.Add(cost)
			costCount++
		}
	}

	avgUnitCost := decimal.Zero
	if costCount > 0 {
		avgUnitCost = costSum.Div(decimal.NewFromInt(costCount))
	}

	return inventory.NewStats(int64(len(rows)), totalQty, totalValue, avgUnitCost), nil
}
