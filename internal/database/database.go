// Package database provides GORM-backed persistence plumbing: connection
// management, a generic repository, query building, and transactions.
package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ErrUnsupportedDriver indicates a database URL with an unrecognized scheme.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Database provides access to GORM sessions for a single connection.
type Database interface {
	// Session returns a GORM session bound to the given context.
	Session(ctx context.Context) *gorm.DB
	// GORM returns the underlying GORM handle.
	GORM() *gorm.DB
	// Close closes the underlying connection pool.
	Close() error
	// IsSQLite reports whether the connection uses the sqlite driver.
	IsSQLite() bool
	// IsPostgres reports whether the connection uses the postgres driver.
	IsPostgres() bool
	// ConfigurePool adjusts the connection pool limits.
	ConfigurePool(maxOpen, maxIdle int, maxLifetime time.Duration) error
}

const (
	driverSQLite   = "sqlite"
	driverPostgres = "postgres"

	sqliteScheme     = "sqlite:///"
	postgresScheme   = "postgres://"
	postgresqlScheme = "postgresql://"

	sqliteMemoryPath = ":memory:"
)

type dialectorInfo struct {
	dialector gorm.Dialector
	driver    string
	dsn       string
}

// parseDialector maps a database URL to a GORM dialector.
// Supported forms: sqlite:///path/to.db, sqlite:///:memory:,
// postgres://... and postgresql://...
func parseDialector(url string) (dialectorInfo, error) {
	switch {
	case strings.HasPrefix(url, sqliteScheme):
		path := strings.TrimPrefix(url, sqliteScheme)
		return dialectorInfo{
			dialector: sqlite.Open(path),
			driver:    driverSQLite,
			dsn:       path,
		}, nil
	case strings.HasPrefix(url, postgresScheme), strings.HasPrefix(url, postgresqlScheme):
		return dialectorInfo{
			dialector: postgres.Open(url),
			driver:    driverPostgres,
			dsn:       url,
		}, nil
	default:
		return dialectorInfo{}, ErrUnsupportedDriver
	}
}

type gormDatabase struct {
	db     *gorm.DB
	driver string
}

// NewDatabase opens a database connection from a URL and verifies it with a
// ping. SQLite in-memory databases are restricted to a single pooled
// connection, since each pool connection would otherwise see its own empty
// database.
func NewDatabase(ctx context.Context, url string) (Database, error) {
	info, err := parseDialector(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	gormDB, err := gorm.Open(info.dialector, &gorm.Config{
		Logger: newGormLogger(slog.Default()),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}

	if info.driver == driverSQLite && info.dsn == sqliteMemoryPath {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &gormDatabase{db: gormDB, driver: info.driver}, nil
}

func (d *gormDatabase) Session(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx)
}

func (d *gormDatabase) GORM() *gorm.DB {
	return d.db
}

func (d *gormDatabase) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("access connection pool: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

func (d *gormDatabase) IsSQLite() bool {
	return d.driver == driverSQLite
}

func (d *gormDatabase) IsPostgres() bool {
	return d.driver == driverPostgres
}

func (d *gormDatabase) ConfigurePool(maxOpen, maxIdle int, maxLifetime time.Duration) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(maxLifetime)
	return nil
}
