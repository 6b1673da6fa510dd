package meterlab_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meterlab/meterlab"
	"github.com/meterlab/meterlab/application/service"
	"github.com/meterlab/meterlab/domain/inventory"
	"github.com/meterlab/meterlab/internal/config"
)

func newTestClient(t *testing.T) *meterlab.Client {
	t.Helper()

	client, err := meterlab.New(context.Background(),
		meterlab.WithInMemoryDatabase(),
		meterlab.WithDataDir(t.TempDir()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestIntegration_RecordLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestClient(t)
	sheet, err := inventory.NewSheet("Ohio", "Meters")
	require.NoError(t, err)

	// Create: the OOR text drives the quantity.
	saved, err := client.Records().Save(ctx, service.RecordSaveParams{
		Sheet: sheet,
		Fields: inventory.RecordFields{
			DevCode:   "MTR-100",
			OORSerial: "1000-1010, 1050",
			UnitCost:  decimal.RequireFromString("39.95"),
		},
	})
	require.NoError(t, err)
	assert.Greater(t, saved.ID(), int64(0))
	assert.Equal(t, 12, saved.Qty())

	// Update in place.
	fields := saved.Fields()
	fields.Notes1 = "checked against PO"
	updated, err := client.Records().Save(ctx, service.RecordSaveParams{
		ID:     saved.ID(),
		Sheet:  sheet,
		Fields: fields,
	})
	require.NoError(t, err)
	assert.Equal(t, saved.ID(), updated.ID())
	assert.Equal(t, "checked against PO", updated.Notes1())

	// Search finds it by device code fragment.
	found, err := client.Records().Search(ctx, service.RecordSearchParams{
		Sheet:   sheet,
		DevCode: "MTR",
	})
	require.NoError(t, err)
	require.Len(t, found, 1)

	stats, err := client.Records().Statistics(ctx, sheet)
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalQty())
	assert.Equal(t, "479.40", stats.TotalValue().StringFixed(2))

	// Delete.
	require.NoError(t, client.Records().Delete(ctx, saved.ID()))
	_, err = client.Records().GetByID(ctx, saved.ID())
	assert.True(t, errors.Is(err, meterlab.ErrNotFound))
}

func TestIntegration_SQLiteFilePersistsAcrossClients(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	t.Parallel()

	ctx := context.Background()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "meterlab.db")
	sheet, err := inventory.NewSheet("Ohio", "Meters")
	require.NoError(t, err)

	client, err := meterlab.New(ctx,
		meterlab.WithSQLite(dbPath),
		meterlab.WithDataDir(filepath.Join(tmpDir, "data")),
	)
	require.NoError(t, err)

	_, err = client.Records().Save(ctx, service.RecordSaveParams{
		Sheet:  sheet,
		Fields: inventory.RecordFields{DevCode: "MTR-100", Qty: 3},
	})
	require.NoError(t, err)
	require.NoError(t, client.Close())

	// Reopening the same file sees the saved record; migrations run
	// again without duplicating anything.
	reopened, err := meterlab.New(ctx,
		meterlab.WithSQLite(dbPath),
		meterlab.WithDataDir(filepath.Join(tmpDir, "data")),
	)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	records, err := reopened.Records().List(ctx, sheet)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "MTR-100", records[0].DevCode())
}

func TestIntegration_ExportImportFiles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestClient(t)
	source, err := inventory.NewSheet("Ohio", "Meters")
	require.NoError(t, err)
	target, err := inventory.NewSheet("I&M", "Meters")
	require.NoError(t, err)

	for _, code := range []string{"MTR-1", "MTR-2"} {
		_, err := client.Records().Save(ctx, service.RecordSaveParams{
			Sheet:  source,
			Fields: inventory.RecordFields{DevCode: code, Qty: 5},
		})
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), service.DefaultExportFilename(source))
	exported, err := client.Transfer().ExportFile(ctx, source, path)
	require.NoError(t, err)
	assert.Equal(t, 2, exported)

	imported, err := client.Transfer().ImportFile(ctx, target, path)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	count, err := client.Records().Count(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestIntegration_Preferences(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestClient(t)

	last, err := client.Preferences().LastSheet(ctx)
	require.NoError(t, err)
	assert.Empty(t, last)

	require.NoError(t, client.Preferences().SetLastSheet(ctx, "Ohio - Meters"))
	last, err = client.Preferences().LastSheet(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ohio - Meters", last)

	assert.True(t, client.Preferences().VerifyEditPasscode("admin123"))
	assert.False(t, client.Preferences().VerifyEditPasscode("wrong"))
}

func TestIntegration_DefaultSheetCatalog(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)

	sheets := client.Sheets()
	require.Len(t, sheets, 4)
	names := make([]string, len(sheets))
	for i, sheet := range sheets {
		names[i] = sheet.Name()
	}
	assert.Contains(t, names, "Ohio - Meters")
	assert.Contains(t, names, "I&M - Transformers")
}

func TestIntegration_SheetsFile(t *testing.T) {
	t.Parallel()

	catalog := filepath.Join(t.TempDir(), "sheets.yaml")
	yaml := "sheets:\n" +
		"  - opco: Ohio\n" +
		"    device_type: Meters\n" +
		"  - opco: Kentucky\n" +
		"    device_type: Regulators\n"
	require.NoError(t, os.WriteFile(catalog, []byte(yaml), 0o644))

	client, err := meterlab.New(context.Background(),
		meterlab.WithInMemoryDatabase(),
		meterlab.WithDataDir(t.TempDir()),
		meterlab.WithSheetsFile(catalog),
	)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	sheets := client.Sheets()
	require.Len(t, sheets, 2)
	assert.Equal(t, "Kentucky - Regulators", sheets[1].Name())
}

func TestIntegration_NoDatabase(t *testing.T) {
	t.Parallel()

	_, err := meterlab.New(context.Background(),
		meterlab.WithConfig(config.AppConfig{}),
	)
	assert.True(t, errors.Is(err, meterlab.ErrNoDatabase))
}

func TestIntegration_CloseTwice(t *testing.T) {
	t.Parallel()

	client, err := meterlab.New(context.Background(),
		meterlab.WithInMemoryDatabase(),
		meterlab.WithDataDir(t.TempDir()),
	)
	require.NoError(t, err)

	require.NoError(t, client.Close())
	assert.True(t, errors.Is(client.Close(), meterlab.ErrClientClosed))
}
