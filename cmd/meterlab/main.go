// Package main is the entry point for the meterlab CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meterlab/meterlab/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meterlab",
		Short: "MeterLab device inventory toolkit",
		Long: `MeterLab tracks utility device inventory on per-sheet grids, one sheet
per operating company and device type, and accounts for out-of-range
(OOR) serial numbers.`,
	}

	cmd.AddCommand(oorCmd())
	cmd.AddCommand(recordsCmd())
	cmd.AddCommand(statsCmd())
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(importCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
