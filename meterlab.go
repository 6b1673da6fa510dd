// Package meterlab provides a library for utility device inventory
// tracking and out-of-range (OOR) serial number accounting.
//
// MeterLab keeps inventory records on per-sheet grids, one sheet per
// operating company and device type, parses OOR serial shorthand like
// "1000-1010, 1050" into explicit quantities, and moves records in and
// out of sheets as CSV.
//
// Basic usage:
//
//	client, err := meterlab.New(ctx,
//	    meterlab.WithSQLite(".meterlab/meterlab.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	sheet, _ := inventory.NewSheet("Ohio", "Meters")
//
//	// Record a delivery; the quantity comes from the OOR text
//	record, err := client.Records().Save(ctx, service.RecordSaveParams{
//	    Sheet: sheet,
//	    Fields: inventory.RecordFields{
//	        DevCode:   "MTR-100",
//	        OORSerial: "1000-1010, 1050",
//	    },
//	})
//
//	// Sheet totals
//	stats, err := client.Records().Statistics(ctx, sheet)
package meterlab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/meterlab/meterlab/application/service"
	"github.com/meterlab/meterlab/domain/inventory"
	"github.com/meterlab/meterlab/infrastructure/persistence"
	"github.com/meterlab/meterlab/internal/config"
	"github.com/meterlab/meterlab/internal/database"
)

// Client is the main entry point for the meterlab library.
//
// Access resources via accessor methods:
//
//	client.Records().List(ctx, sheet)
//	client.Transfer().ExportFile(ctx, sheet, "Ohio_Meters.csv")
//	client.Preferences().LastSheet(ctx)
type Client struct {
	db database.Database

	recordStore     persistence.RecordStore
	preferenceStore persistence.PreferenceStore

	records     *service.Records
	transfer    *service.Transfer
	preferences *service.Preferences

	cfg     config.AppConfig
	sheets  []inventory.Sheet
	dataDir string

	logger *slog.Logger
	closed atomic.Bool
}

// New creates a new Client with the given options. Without a database
// option the client stores data in SQLite under the data directory.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	dbURL, err := buildDatabaseURL(cfg)
	if err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		logger = config.DefaultLogger()
	}

	dataDir, err := config.PrepareDataDir(cfg.appConfig.DataDir())
	if err != nil {
		return nil, err
	}

	defs, err := cfg.appConfig.SheetDefs()
	if err != nil {
		return nil, fmt.Errorf("sheet catalog: %w", err)
	}
	sheets := make([]inventory.Sheet, 0, len(defs))
	for _, def := range defs {
		sheet, err := inventory.NewSheet(def.OpCo, def.DeviceType)
		if err != nil {
			return nil, fmt.Errorf("sheet catalog: %w", err)
		}
		sheets = append(sheets, sheet)
	}

	db, err := database.NewDatabase(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One-time schema conversions from Python-era databases
	if err := persistence.PreMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("pre migrate: %w", err), errClose)
	}

	// Run auto migration
	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	// Validate schema matches GORM models
	if err := persistence.ValidateSchema(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("validate schema: %w", err), errClose)
	}

	recordStore := persistence.NewRecordStore(db)
	preferenceStore := persistence.NewPreferenceStore(db)

	client := &Client{
		db:              db,
		recordStore:     recordStore,
		preferenceStore: preferenceStore,
		records:         service.NewRecords(recordStore, logger),
		transfer:        service.NewTransfer(recordStore, logger),
		preferences:     service.NewPreferences(preferenceStore, cfg.appConfig.EditPasscodeHash()),
		cfg:             cfg.appConfig,
		sheets:          sheets,
		dataDir:         dataDir,
		logger:          logger,
	}

	logger.Info("meterlab client ready",
		slog.String("data_dir", dataDir),
		slog.Int("sheets", len(sheets)),
	)
	return client, nil
}

// buildDatabaseURL constructs the database URL from configuration.
func buildDatabaseURL(cfg *clientConfig) (string, error) {
	switch cfg.database {
	case databaseSQLite:
		return "sqlite:///" + cfg.dbPath, nil
	case databaseMemory:
		return "sqlite:///:memory:", nil
	case databaseFromURL:
		return cfg.dbURL, nil
	default:
		if url := cfg.appConfig.DBURL(); url != "" {
			return url, nil
		}
		return "", ErrNoDatabase
	}
}

// Records returns the record management service.
func (c *Client) Records() *service.Records { return c.records }

// Transfer returns the CSV import/export service.
func (c *Client) Transfer() *service.Transfer { return c.transfer }

// Preferences returns the user preference service.
func (c *Client) Preferences() *service.Preferences { return c.preferences }

// Config returns the resolved application configuration.
func (c *Client) Config() config.AppConfig { return c.cfg }

// DB returns the underlying database, for callers that need raw access.
func (c *Client) DB() database.Database { return c.db }

// Sheets returns the configured sheet catalog.
func (c *Client) Sheets() []inventory.Sheet {
	out := make([]inventory.Sheet, len(c.sheets))
	copy(out, c.sheets)
	return out
}

// DataDir returns the prepared data directory.
func (c *Client) DataDir() string { return c.dataDir }

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger { return c.logger }

// Close releases the database. A second call returns ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}

	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	c.logger.Info("meterlab client closed")
	return nil
}
