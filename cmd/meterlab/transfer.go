package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meterlab/meterlab/application/service"
)

func exportCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "export <sheet> [file.csv]",
		Short: "Export a sheet to a CSV file",
		Long: `Export every record on a sheet to a CSV file, newest first. The
file name defaults to the sheet name, such as Ohio_Meters.csv.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 2 {
				path = args[1]
			}
			return runExport(envFile, args[0], path)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")

	return cmd
}

func runExport(envFile, sheetName, path string) error {
	ctx := context.Background()

	client, err := newClient(ctx, envFile)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	sheet, err := parseSheet(client, sheetName)
	if err != nil {
		return err
	}
	if path == "" {
		path = service.DefaultExportFilename(sheet)
	}

	count, err := client.Transfer().ExportFile(ctx, sheet, path)
	if err != nil {
		return err
	}

	fmt.Printf("exported %d records from %s to %s\n", count, sheet.Name(), path)
	return nil
}

func importCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "import <sheet> <file.csv>",
		Short: "Import records from a CSV file onto a sheet",
		Long: `Import records from a CSV file onto a sheet. Columns are matched by
header name, so exports from other sheets or hand-edited files load
as long as the headers survive. A file with any bad row imports
nothing.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(envFile, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")

	return cmd
}

func runImport(envFile, sheetName, path string) error {
	ctx := context.Background()

	client, err := newClient(ctx, envFile)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	sheet, err := parseSheet(client, sheetName)
	if err != nil {
		return err
	}

	count, err := client.Transfer().ImportFile(ctx, sheet, path)
	if err != nil {
		return err
	}

	fmt.Printf("imported %d records onto %s\n", count, sheet.Name())
	return nil
}
