// Package testdb provides a shared in-memory SQLite database helper for
// service and store tests.
package testdb

import (
	"context"
	"testing"

	"github.com/meterlab/meterlab/infrastructure/persistence"
	"github.com/meterlab/meterlab/internal/database"
)

// New creates an in-memory SQLite database carried through the same
// migration steps production databases get, so tests run against the
// exact schema the application ships. The database closes when the
// test finishes.
func New(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewDatabase(ctx, "sqlite:///:memory:")
	if err != nil {
		t.Fatalf("testdb.New: open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := persistence.PreMigrate(db); err != nil {
		t.Fatalf("testdb.New: pre-migrate: %v", err)
	}
	if err := persistence.AutoMigrate(db); err != nil {
		t.Fatalf("testdb.New: auto migrate: %v", err)
	}
	if err := persistence.ValidateSchema(db); err != nil {
		t.Fatalf("testdb.New: validate schema: %v", err)
	}
	return db
}
