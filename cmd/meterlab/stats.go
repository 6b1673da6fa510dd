package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/meterlab/meterlab/domain/display"
	"github.com/meterlab/meterlab/domain/inventory"
)

func statsCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "stats [sheet]",
		Short: "Print totals for one sheet, or for every sheet combined",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheetName := ""
			if len(args) == 1 {
				sheetName = args[0]
			}
			return runStats(envFile, sheetName)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")

	return cmd
}

func runStats(envFile, sheetName string) error {
	ctx := context.Background()

	client, err := newClient(ctx, envFile)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if sheetName == "" {
		stats, err := client.Records().CombinedStatistics(ctx, client.Sheets())
		if err != nil {
			return err
		}
		printStats("All sheets", stats)
		return nil
	}

	sheet, err := parseSheet(client, sheetName)
	if err != nil {
		return err
	}
	stats, err := client.Records().Statistics(ctx, sheet)
	if err != nil {
		return err
	}
	printStats(sheet.Name(), stats)
	return nil
}

func printStats(name string, stats inventory.Stats) {
	fmt.Printf("Sheet:       %s\n", name)
	fmt.Printf("Records:     %s\n", display.FormatCell(display.KindQty, strconv.FormatInt(stats.RecordCount(), 10)))
	fmt.Printf("Total Qty:   %s\n", display.FormatCell(display.KindQty, strconv.FormatInt(stats.TotalQty(), 10)))
	fmt.Printf("Total Value: %s\n", display.FormatCell(display.KindCurrency, stats.TotalValue().String()))
	fmt.Printf("Avg Cost:    %s\n", display.FormatCell(display.KindCurrency, stats.AvgUnitCost().String()))
}
