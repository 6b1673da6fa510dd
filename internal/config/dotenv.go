package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// If the file does not exist, it silently returns nil (not an error).
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	// Check if file exists first
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}

// MustLoadDotEnv loads environment variables from a .env file.
// Unlike LoadDotEnv, it returns an error if the file does not exist.
func MustLoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	return godotenv.Load(path)
}

// LoadConfig loads configuration from a .env file (optional) and environment variables.
// An empty envPath means ".env" in the current directory, skipped silently when
// absent. A non-empty envPath names a file the caller asked for, so a missing
// file is an error rather than a silent fall-through to defaults.
func LoadConfig(envPath string) (AppConfig, error) {
	if envPath == "" {
		if err := LoadDotEnv(""); err != nil {
			return AppConfig{}, err
		}
	} else {
		if err := MustLoadDotEnv(envPath); err != nil {
			return AppConfig{}, err
		}
	}

	// Load from environment variables
	envCfg, err := LoadFromEnv()
	if err != nil {
		return AppConfig{}, err
	}

	return envCfg.Normalize().ToAppConfig(), nil
}
