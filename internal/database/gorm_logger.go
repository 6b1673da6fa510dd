package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormLogger bridges GORM's logger.Interface onto slog so SQL activity
// lands in the application log stream. Every executed statement is a
// Debug message; level filtering stays with slog, and the SQL text is
// never formatted when Debug is disabled.
type gormLogger struct {
	log *slog.Logger
}

func newGormLogger(log *slog.Logger) gormLogger {
	return gormLogger{log: log}
}

// LogMode is a no-op; slog decides what gets emitted.
func (g gormLogger) LogMode(logger.LogLevel) logger.Interface { return g }

func (g gormLogger) Info(ctx context.Context, msg string, args ...any) {
	g.log.InfoContext(ctx, fmt.Sprintf(msg, args...))
}

func (g gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	g.log.WarnContext(ctx, fmt.Sprintf(msg, args...))
}

func (g gormLogger) Error(ctx context.Context, msg string, args ...any) {
	g.log.ErrorContext(ctx, fmt.Sprintf(msg, args...))
}

// sqlLogLimit caps how much SQL text a single log line carries.
const sqlLogLimit = 200

func clipSQL(sql string) string {
	if len(sql) <= sqlLogLimit {
		return sql
	}
	return fmt.Sprintf("%s... (%d bytes)", sql[:sqlLogLimit], len(sql))
}

// Trace runs after every SQL operation. ErrRecordNotFound is the normal
// "no rows" outcome of First(), not a failure, so it logs at Debug with
// the successful queries.
func (g gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		sql, rows := fc()
		g.log.ErrorContext(ctx, "sql failed",
			"sql", clipSQL(sql),
			"rows", rows,
			"duration", elapsed,
			"error", err,
		)
		return
	}

	if !g.log.Enabled(ctx, slog.LevelDebug) {
		return
	}

	sql, rows := fc()
	g.log.DebugContext(ctx, "sql",
		"sql", clipSQL(sql),
		"rows", rows,
		"duration", elapsed,
	)
}
