package meterlab

import (
	"errors"

	"github.com/meterlab/meterlab/internal/database"
)

// Exported errors for library consumers.
var (
	// ErrNotFound indicates a requested record or preference does not exist.
	ErrNotFound = database.ErrNotFound

	// ErrNoDatabase indicates no database was configured.
	ErrNoDatabase = errors.New("meterlab: no database configured")

	// ErrClientClosed indicates the client has been closed.
	ErrClientClosed = errors.New("meterlab: client is closed")
)
