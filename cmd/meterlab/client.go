package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/meterlab/meterlab"
	"github.com/meterlab/meterlab/domain/inventory"
	"github.com/meterlab/meterlab/internal/log"
)

// newClient builds a meterlab client from the resolved configuration.
// Logs go to stderr so command output on stdout stays machine-readable.
func newClient(ctx context.Context, envFile string) (*meterlab.Client, error) {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return nil, err
	}

	logger := log.NewLoggerWithWriter(os.Stderr, cfg.LogFormat(), cfg.LogLevel())
	slogger := logger.Slog()

	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	slogger.LogAttrs(ctx, slog.LevelDebug, "starting meterlab", attrs...)

	client, err := meterlab.New(ctx,
		meterlab.WithConfig(cfg),
		meterlab.WithLogger(slogger),
	)
	if err != nil {
		return nil, fmt.Errorf("create meterlab client: %w", err)
	}
	return client, nil
}

// parseSheet parses a sheet name and checks it against the configured
// catalog, so a typo cannot address a sheet that does not exist.
func parseSheet(client *meterlab.Client, name string) (inventory.Sheet, error) {
	sheet, err := inventory.ParseSheetName(name)
	if err != nil {
		return inventory.Sheet{}, err
	}
	for _, known := range client.Sheets() {
		if known == sheet {
			return sheet, nil
		}
	}
	return inventory.Sheet{}, fmt.Errorf("unknown sheet %q; configured sheets: %s", name, sheetNames(client))
}

// resolveSheet resolves the --sheet flag, falling back to the last used
// sheet when the flag is empty, and records the choice for next time.
func resolveSheet(ctx context.Context, client *meterlab.Client, name string) (inventory.Sheet, error) {
	if name == "" {
		last, err := client.Preferences().LastSheet(ctx)
		if err != nil {
			return inventory.Sheet{}, err
		}
		if last == "" {
			return inventory.Sheet{}, fmt.Errorf("no sheet given and none used before; pass --sheet %q", "OpCo - DeviceType")
		}
		name = last
	}

	sheet, err := parseSheet(client, name)
	if err != nil {
		return inventory.Sheet{}, err
	}
	if err := client.Preferences().SetLastSheet(ctx, sheet.Name()); err != nil {
		return inventory.Sheet{}, err
	}
	return sheet, nil
}

func sheetNames(client *meterlab.Client) string {
	sheets := client.Sheets()
	names := make([]string, len(sheets))
	for i, sheet := range sheets {
		names[i] = fmt.Sprintf("%q", sheet.Name())
	}
	return strings.Join(names, ", ")
}
