package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meterlab/meterlab/domain/inventory"
	"github.com/meterlab/meterlab/domain/preferences"
	"github.com/meterlab/meterlab/internal/database"
)

// newLegacyDB creates an in-memory database with the schema the Python
// desktop app used, before any migration has run.
func newLegacyDB(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewDatabase(ctx, "sqlite:///:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	statements := []string{
		`CREATE TABLE inventory (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			opco TEXT NOT NULL,
			device_type TEXT NOT NULL,
			status TEXT, mfr TEXT, dev_code TEXT, beg_ser TEXT, end_ser TEXT,
			qty INTEGER DEFAULT 0,
			po_date TEXT, po_number TEXT, recv_date TEXT,
			unit_cost REAL,
			cid TEXT, me_number TEXT, pur_code TEXT, est TEXT, use TEXT,
			notes1 TEXT, notes2 TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`INSERT INTO inventory (opco, device_type, dev_code, beg_ser, end_ser, qty, unit_cost, recv_date)
			VALUES ('OH', 'Xfmrs', 'XFM-100', '7000', '7009', 10, 250.5, '2023-11-02')`,
		`INSERT INTO inventory (opco, device_type, dev_code, qty, unit_cost)
			VALUES ('Ohio', 'Meters', 'MTR-100', 5, NULL)`,
		`CREATE TABLE user_preferences (
			preference_key TEXT PRIMARY KEY,
			preference_value TEXT,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`INSERT INTO user_preferences (preference_key, preference_value) VALUES ('last_sheet', 'Ohio - Meters')`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.GORM().Exec(stmt).Error)
	}
	return db
}

func TestMigration_ConvertsLegacyDatabase(t *testing.T) {
	ctx := context.Background()
	db := newLegacyDB(t)

	require.NoError(t, PreMigrate(db))
	require.NoError(t, AutoMigrate(db))

	recordStore := NewRecordStore(db)
	records, err := recordStore.Find(ctx, inventory.WithOrderByID())
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Abbreviated sheet names are canonicalized during the copy.
	xfm := records[1]
	assert.Equal(t, "Ohio - Transformers", xfm.Sheet().Name())
	assert.Equal(t, "XFM-100", xfm.DevCode())
	assert.Equal(t, 10, xfm.Qty())
	assert.Equal(t, "250.5", xfm.UnitCost().String())
	assert.Equal(t, "", xfm.OORSerial())

	// NULL costs come over as zero.
	mtr := records[0]
	assert.True(t, mtr.UnitCost().IsZero())

	migrator := db.GORM().Migrator()
	assert.False(t, migrator.HasTable("inventory"))
	assert.True(t, migrator.HasTable("inventory_legacy"))

	prefStore := NewPreferenceStore(db)
	pref, err := prefStore.Get(ctx, preferences.KeyLastSheet)
	require.NoError(t, err)
	assert.Equal(t, "Ohio - Meters", pref.Value())
	assert.False(t, migrator.HasTable("user_preferences_legacy"))
}

func TestMigration_RunsOnceOnly(t *testing.T) {
	ctx := context.Background()
	db := newLegacyDB(t)

	require.NoError(t, PreMigrate(db))
	require.NoError(t, AutoMigrate(db))

	// A second startup must not duplicate converted rows.
	require.NoError(t, PreMigrate(db))
	require.NoError(t, AutoMigrate(db))

	recordStore := NewRecordStore(db)
	count, err := recordStore.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	prefStore := NewPreferenceStore(db)
	all, err := prefStore.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMigration_FreshDatabase(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewDatabase(ctx, "sqlite:///:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, PreMigrate(db))
	require.NoError(t, AutoMigrate(db))

	migrator := db.GORM().Migrator()
	assert.True(t, migrator.HasTable(&RecordModel{}))
	assert.True(t, migrator.HasTable(&PreferenceModel{}))
	assert.False(t, migrator.HasTable("inventory_legacy"))
}

func TestValidateSchema(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, ValidateSchema(db))
}

func TestValidateSchema_MissingColumn(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.GORM().Exec(`ALTER TABLE user_preferences DROP COLUMN preference_value`).Error)

	err := ValidateSchema(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user_preferences.preference_value")
}
