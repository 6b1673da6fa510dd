// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Default configuration values.
const (
	DefaultLogLevel = "INFO"
	DefaultDBFile   = "meterlab.db"

	// DefaultEditPasscodeHash is the MD5 hex digest of the default edit
	// passcode ("admin123"). Deployments override it via EDIT_PASSCODE_HASH.
	DefaultEditPasscodeHash = "0192023a7bbd73250516f069df18b500"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig holds the main application configuration.
type AppConfig struct {
	dataDir          string
	dbURL            string
	logLevel         string
	logFormat        LogFormat
	sheetsFile       string
	editPasscodeHash string
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".meterlab"
	}
	return filepath.Join(home, ".meterlab")
}

// DefaultDBURL returns the default database URL for a given data directory.
func DefaultDBURL(dataDir string) string {
	return "sqlite:///" + filepath.Join(dataDir, DefaultDBFile)
}

// DefaultLogger returns the default slog logger for library consumers.
func DefaultLogger() *slog.Logger {
	return slog.Default()
}

// PrepareDataDir creates the data directory if it does not exist and returns it.
func PrepareDataDir(dataDir string) (string, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dataDir, nil
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	dataDir := DefaultDataDir()
	return AppConfig{
		dataDir:          dataDir,
		dbURL:            DefaultDBURL(dataDir),
		logLevel:         DefaultLogLevel,
		logFormat:        LogFormatPretty,
		editPasscodeHash: DefaultEditPasscodeHash,
	}
}

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// SheetsFile returns the path of the YAML sheet catalog, or "" when the
// built-in catalog should be used.
func (c AppConfig) SheetsFile() string { return c.sheetsFile }

// EditPasscodeHash returns the MD5 hex digest guarding edit mode.
func (c AppConfig) EditPasscodeHash() string { return c.editPasscodeHash }

// EnsureDataDir creates the data directory if it doesn't exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.dataDir, 0o755)
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithDataDir sets the data directory.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) {
		c.dataDir = dir
		// Update default DB URL when data dir changes
		if c.dbURL == "" || strings.Contains(c.dbURL, DefaultDBFile) {
			c.dbURL = DefaultDBURL(dir)
		}
	}
}

// WithDBURL sets the database URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithSheetsFile sets the path of the YAML sheet catalog.
func WithSheetsFile(path string) AppConfigOption {
	return func(c *AppConfig) { c.sheetsFile = path }
}

// WithEditPasscodeHash sets the MD5 hex digest guarding edit mode.
func WithEditPasscodeHash(hash string) AppConfigOption {
	return func(c *AppConfig) {
		if hash != "" {
			c.editPasscodeHash = strings.ToLower(hash)
		}
	}
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
// This copies all fields from the receiver and then applies the options,
// making it safe to use when adding new fields to AppConfig.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
// The passcode hash is reported as presence only, never as a value.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("data_dir", c.dataDir),
		slog.String("log_level", c.logLevel),
		slog.String("db_url", c.maskedDBURL()),
		slog.String("sheets_file", c.sheetsFileOrDefault()),
		slog.Bool("custom_passcode", c.editPasscodeHash != DefaultEditPasscodeHash),
	}
}

func (c AppConfig) maskedDBURL() string {
	if c.dbURL == "" {
		return "(default)"
	}
	if len(c.dbURL) >= 7 && c.dbURL[:7] == "sqlite:" {
		return c.dbURL
	}
	return "postgres://***@***"
}

func (c AppConfig) sheetsFileOrDefault() string {
	if c.sheetsFile == "" {
		return "(built-in)"
	}
	return c.sheetsFile
}
