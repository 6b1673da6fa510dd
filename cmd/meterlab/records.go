package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/meterlab/meterlab/application/service"
	"github.com/meterlab/meterlab/domain/display"
	"github.com/meterlab/meterlab/domain/inventory"
)

// gridColumns are the columns shown by records list and search.
var gridColumns = []string{"ID", "Dev Code", "Beg Ser", "End Ser", "OOR Serial", "Qty", "Recv Date", "CID"}

func recordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "List, search, and clear inventory records",
	}

	cmd.AddCommand(recordsListCmd())
	cmd.AddCommand(recordsSearchCmd())
	cmd.AddCommand(recordsClearCmd())

	return cmd
}

func recordsListCmd() *cobra.Command {
	var (
		envFile   string
		sheetName string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records on a sheet, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecordsList(envFile, sheetName)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&sheetName, "sheet", "", `Sheet name, such as "Ohio - Meters" (default: last used sheet)`)

	return cmd
}

func runRecordsList(envFile, sheetName string) error {
	ctx := context.Background()

	client, err := newClient(ctx, envFile)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	sheet, err := resolveSheet(ctx, client, sheetName)
	if err != nil {
		return err
	}

	records, err := client.Records().List(ctx, sheet)
	if err != nil {
		return err
	}

	renderRecords(os.Stdout, records)
	fmt.Printf("%d records on %s\n", len(records), sheet.Name())
	return nil
}

func recordsSearchCmd() *cobra.Command {
	var (
		envFile   string
		sheetName string
		devCode   string
		poNumber  string
		recvDate  string
		limit     int
		offset    int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search records on a sheet by device code, PO number, or date",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecordsSearch(envFile, sheetName, service.RecordSearchParams{
				DevCode:  devCode,
				PONumber: poNumber,
				RecvDate: recvDate,
				Limit:    limit,
				Offset:   offset,
			})
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&sheetName, "sheet", "", `Sheet name, such as "Ohio - Meters" (default: last used sheet)`)
	cmd.Flags().StringVar(&devCode, "dev-code", "", "Match device codes containing this text")
	cmd.Flags().StringVar(&poNumber, "po", "", "Match PO numbers containing this text")
	cmd.Flags().StringVar(&recvDate, "recv-date", "", "Match this exact received date")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows to print (0 prints all)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Rows to skip before printing")

	return cmd
}

func runRecordsSearch(envFile, sheetName string, params service.RecordSearchParams) error {
	ctx := context.Background()

	client, err := newClient(ctx, envFile)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	sheet, err := resolveSheet(ctx, client, sheetName)
	if err != nil {
		return err
	}
	params.Sheet = sheet

	records, err := client.Records().Search(ctx, params)
	if err != nil {
		return err
	}
	total, err := client.Records().SearchCount(ctx, params)
	if err != nil {
		return err
	}

	renderRecords(os.Stdout, records)
	fmt.Printf("%d of %d matching records on %s\n", len(records), total, sheet.Name())
	return nil
}

func recordsClearCmd() *cobra.Command {
	var (
		envFile   string
		sheetName string
		passcode  string
	)

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every record on a sheet",
		Long: `Delete every record on a sheet. This cannot be undone, so the
edit passcode is required.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecordsClear(envFile, sheetName, passcode)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&sheetName, "sheet", "", `Sheet name, such as "Ohio - Meters"`)
	cmd.Flags().StringVar(&passcode, "passcode", "", "Edit passcode")

	return cmd
}

func runRecordsClear(envFile, sheetName, passcode string) error {
	ctx := context.Background()

	client, err := newClient(ctx, envFile)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if !client.Preferences().VerifyEditPasscode(passcode) {
		return fmt.Errorf("invalid edit passcode")
	}

	// Clearing takes an explicit sheet; no last-sheet fallback here.
	if sheetName == "" {
		return fmt.Errorf("no sheet given; pass --sheet %q", "OpCo - DeviceType")
	}
	sheet, err := parseSheet(client, sheetName)
	if err != nil {
		return err
	}

	deleted, err := client.Records().ClearSheet(ctx, sheet)
	if err != nil {
		return err
	}

	fmt.Printf("deleted %d records from %s\n", deleted, sheet.Name())
	return nil
}

// renderRecords prints records as an aligned table.
func renderRecords(w io.Writer, records []inventory.Record) {
	tw := new(tabwriter.Writer)
	tw.Init(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(gridColumns, "\t"))
	for _, r := range records {
		cells := []string{
			strconv.FormatInt(r.ID(), 10),
			r.DevCode(),
			r.BegSer(),
			r.EndSer(),
			display.FormatCell(display.KindOORSerial, r.OORSerial()),
			display.FormatCell(display.KindQty, strconv.Itoa(r.Qty())),
			display.FormatCell(display.KindDate, r.RecvDate()),
			r.CID(),
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
}
