// Package persistence provides database storage implementations.
package persistence

import (
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/meterlab/meterlab/internal/database"
)

// PreMigrate handles one-time schema conversions from the Python-era database.
// The old desktop app keyed user_preferences directly on preference_key, which
// AutoMigrate cannot reconcile with the id column the current schema expects,
// so the old table is moved aside here and its rows are copied back after
// migration. Safe to run repeatedly.
func PreMigrate(db database.Database) error {
	if db.IsPostgres() {
		return nil
	}

	gdb := db.GORM()
	migrator := gdb.Migrator()

	if !migrator.HasTable("user_preferences") {
		return nil
	}
	if migrator.HasColumn(&PreferenceModel{}, "id") {
		return nil
	}

	slog.Warn("one-time database migration: moving Python-era user_preferences aside — please wait, do not interrupt")
	if migrator.HasTable("user_preferences_legacy") {
		if err := gdb.Exec(`DROP TABLE user_preferences_legacy`).Error; err != nil {
			return fmt.Errorf("drop stale legacy preferences: %w", err)
		}
	}
	if err := gdb.Exec(`ALTER TABLE user_preferences RENAME TO user_preferences_legacy`).Error; err != nil {
		return fmt.Errorf("rename legacy preferences: %w", err)
	}
	return nil
}

// AutoMigrate runs GORM auto migration for all models.
func AutoMigrate(db database.Database) error {
	if err := db.GORM().AutoMigrate(
		&RecordModel{},
		&PreferenceModel{},
	); err != nil {
		return err
	}
	return postMigrate(db)
}

// postMigrate copies rows out of the Python-era tables once the current
// schema exists. The old app stored records in an "inventory" table with
// no oor_serial column and REAL unit costs; rows are converted here and
// the old table is renamed so the copy never runs twice.
func postMigrate(db database.Database) error {
	if db.IsPostgres() {
		return nil
	}

	gdb := db.GORM()
	migrator := gdb.Migrator()

	if migrator.HasTable("inventory") {
		var existing int64
		if err := gdb.Raw(`SELECT COUNT(*) FROM inventory_records`).Scan(&existing).Error; err != nil {
			return fmt.Errorf("count records: %w", err)
		}
		if existing == 0 {
			slog.Warn("one-time database migration: converting Python-era inventory rows — please wait, do not interrupt")
			// Sheet names are canonicalized on the way over so old rows
			// land on the same sheets as newly entered ones.
			err := gdb.Exec(`
				INSERT INTO inventory_records
					(id, op_co, device_type, status, mfr, dev_code, beg_ser, end_ser,
					 oor_serial, qty, po_date, po_number, recv_date, unit_cost, cid,
					 me_number, pur_code, est, use, notes1, notes2, created_at, updated_at)
				SELECT id,
					CASE opco WHEN 'OH' THEN 'Ohio' ELSE COALESCE(opco, '') END,
					CASE device_type WHEN 'Xfmrs' THEN 'Transformers' ELSE COALESCE(device_type, '') END,
					COALESCE(status, ''), COALESCE(mfr, ''), COALESCE(dev_code, ''),
					COALESCE(beg_ser, ''), COALESCE(end_ser, ''),
					'', COALESCE(qty, 0), COALESCE(po_date, ''), COALESCE(po_number, ''),
					COALESCE(recv_date, ''), COALESCE(CAST(unit_cost AS TEXT), '0'), COALESCE(cid, ''),
					COALESCE(me_number, ''), COALESCE(pur_code, ''), COALESCE(est, ''),
					COALESCE(use, ''), COALESCE(notes1, ''), COALESCE(notes2, ''),
					COALESCE(created_at, CURRENT_TIMESTAMP), COALESCE(updated_at, CURRENT_TIMESTAMP)
				FROM inventory
			`).Error
			if err != nil {
				return fmt.Errorf("convert legacy inventory: %w", err)
			}
			if err := gdb.Exec(`ALTER TABLE inventory RENAME TO inventory_legacy`).Error; err != nil {
				return fmt.Errorf("rename legacy inventory: %w", err)
			}
			slog.Info("one-time database migration complete: legacy inventory converted")
		}
	}

	if migrator.HasTable("user_preferences_legacy") {
		err := gdb.Exec(`
			INSERT OR IGNORE INTO user_preferences (preference_key, preference_value, updated_at)
			SELECT preference_key, preference_value, COALESCE(updated_at, CURRENT_TIMESTAMP)
			FROM user_preferences_legacy
		`).Error
		if err != nil {
			return fmt.Errorf("convert legacy preferences: %w", err)
		}
		if err := gdb.Exec(`DROP TABLE user_preferences_legacy`).Error; err != nil {
			return fmt.Errorf("drop legacy preferences: %w", err)
		}
		slog.Info("one-time database migration complete: legacy preferences converted")
	}

	return nil
}

// allModels returns every GORM model that AutoMigrate manages.
func allModels() []interface{} {
	return []interface{}{
		&RecordModel{},
		&PreferenceModel{},
	}
}

// ValidateSchema verifies every GORM model field has a corresponding column
// in the database. Returns an error listing any missing columns.
func ValidateSchema(db database.Database) error {
	gdb := db.GORM()
	migrator := gdb.Migrator()

	var missing []string
	for _, model := range allModels() {
		stmt := &gorm.Statement{DB: gdb}
		if err := stmt.Parse(model); err != nil {
			return fmt.Errorf("parse model schema: %w", err)
		}

		columnTypes, err := migrator.ColumnTypes(model)
		if err != nil {
			return fmt.Errorf("get column types for %s: %w", stmt.Table, err)
		}

		actual := make(map[string]bool, len(columnTypes))
		for _, ct := range columnTypes {
			actual[ct.Name()] = true
		}

		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" || field.DBName == "-" {
				continue
			}
			if !actual[field.DBName] {
				missing = append(missing, stmt.Table+"."+field.DBName)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("schema validation failed — missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
