package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Tx is an open database transaction. Exactly one Commit or Rollback
// finishes it; later calls on a finished Tx are no-ops.
type Tx struct {
	session *gorm.DB
	done    bool
}

// Begin opens a transaction on the database.
func Begin(ctx context.Context, db Database) (*Tx, error) {
	session := db.Session(ctx).Begin()
	if session.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", session.Error)
	}
	return &Tx{session: session}, nil
}

// Session returns the transactional session queries should run on.
func (t *Tx) Session() *gorm.DB {
	return t.session
}

// Commit makes the transaction's writes permanent.
func (t *Tx) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	if err := t.session.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Rollback discards the transaction's writes.
func (t *Tx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	if err := t.session.Rollback().Error; err != nil {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

// WithTransaction runs fn inside a transaction, committing when fn
// returns nil and rolling back otherwise.
func WithTransaction(ctx context.Context, db Database, fn func(tx *gorm.DB) error) error {
	tx, err := Begin(ctx, db)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx.Session()); err != nil {
		return err
	}
	return tx.Commit()
}
