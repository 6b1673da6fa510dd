package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/meterlab/meterlab/domain/inventory"
)

// exportColumns is the CSV header written by Export. Import maps
// columns by header name, so files with reordered or missing columns
// still load.
var exportColumns = []string{
	"ID", "OpCo", "Device Type", "Status", "MFR", "Dev Code", "Beg Ser",
	"End Ser", "OOR Serial", "Qty", "PO Date", "PO Number", "Recv Date",
	"Unit Cost", "CID", "ME Number", "Pur Code", "EST", "USE",
	"Notes1", "Notes2", "Created At", "Updated At",
}

// timestampLayout renders created/updated timestamps in export files.
const timestampLayout = "2006-01-02 15:04:05"

// Transfer moves records between sheets and CSV files.
type Transfer struct {
	recordStore inventory.RecordStore
	logger      *slog.Logger
}

// NewTransfer creates a new Transfer service.
func NewTransfer(recordStore inventory.RecordStore, logger *slog.Logger) *Transfer {
	return &Transfer{
		recordStore: recordStore,
		logger:      logger,
	}
}

// DefaultExportFilename returns the conventional export name for a
// sheet, such as "Ohio_Meters.csv".
func DefaultExportFilename(sheet inventory.Sheet) string {
	return sheet.OpCo() + "_" + sheet.DeviceType() + ".csv"
}

// Export writes every record on a sheet as CSV, newest first, and
// returns how many rows were written.
func (s *Transfer) Export(ctx context.Context, sheet inventory.Sheet, w io.Writer) (int, error) {
	records, err := s.recordStore.Find(ctx, inventory.WithSheet(sheet), inventory.WithOrderByID())
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportColumns); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := writer.Write(exportRow(r)); err != nil {
			return 0, fmt.Errorf("write record %d: %w", r.ID(), err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("flush export: %w", err)
	}

	s.logger.Info("records exported",
		slog.String("sheet", sheet.Name()),
		slog.Int("count", len(records)),
	)
	return len(records), nil
}

// ExportFile writes a sheet's records to a CSV file.
func (s *Transfer) ExportFile(ctx context.Context, sheet inventory.Sheet, path string) (count int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return s.Export(ctx, sheet, f)
}

// Import reads CSV rows onto the given sheet. Columns are matched by
// header name. Every row is validated before anything is written; when
// any row fails, the whole import is rejected and the error lists each
// bad row by number.
func (s *Transfer) Import(ctx context.Context, sheet inventory.Sheet, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	// Rows shorter than the header are tolerated; missing cells read as
	// empty.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return 0, errors.New("import: no header row")
	}
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	columns := indexColumns(header)

	var (
		records []inventory.Record
		rowErrs []error
	)
	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w", rowNum, err))
			continue
		}
		if blankRow(row) {
			continue
		}

		fields, err := rowFields(columns, row)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w", rowNum, err))
			continue
		}
		record, err := inventory.NewRecord(sheet, fields)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w", rowNum, err))
			continue
		}
		records = append(records, record)
	}
	if len(rowErrs) > 0 {
		return 0, fmt.Errorf("import aborted, nothing written: %w", errors.Join(rowErrs...))
	}

	saved, err := s.recordStore.SaveAll(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}

	s.logger.Info("records imported",
		slog.String("sheet", sheet.Name()),
		slog.Int("count", len(saved)),
	)
	return len(saved), nil
}

// ImportFile reads a CSV file onto the given sheet.
func (s *Transfer) ImportFile(ctx context.Context, sheet inventory.Sheet, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return s.Import(ctx, sheet, f)
}

func exportRow(r inventory.Record) []string {
	return []string{
		strconv.FormatInt(r.ID(), 10),
		r.Sheet().OpCo(),
		r.Sheet().DeviceType(),
		r.Status(),
		r.MFR(),
		r.DevCode(),
		r.BegSer(),
		r.EndSer(),
		r.OORSerial(),
		strconv.Itoa(r.Qty()),
		r.PODate(),
		r.PONumber(),
		r.RecvDate(),
		r.UnitCost().String(),
		r.CID(),
		r.MENumber(),
		r.PurCode(),
		r.Est(),
		r.Use(),
		r.Notes1(),
		r.Notes2(),
		r.CreatedAt().UTC().Format(timestampLayout),
		r.UpdatedAt().UTC().Format(timestampLayout),
	}
}

// indexColumns maps normalized header names to their positions.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return columns
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// rowFields builds record fields from one CSV row. Identity and sheet
// columns (ID, OpCo, Device Type, timestamps) are ignored: imported
// rows are new records on the target sheet.
func rowFields(columns map[string]int, row []string) (inventory.RecordFields, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	qty, err := parseQty(cell("qty"))
	if err != nil {
		return inventory.RecordFields{}, err
	}

	return inventory.RecordFields{
		Status:    cell("status"),
		MFR:       cell("mfr"),
		DevCode:   cell("dev code"),
		BegSer:    cell("beg ser"),
		EndSer:    cell("end ser"),
		OORSerial: cell("oor serial"),
		Qty:       qty,
		PODate:    cell("po date"),
		PONumber:  cell("po number"),
		RecvDate:  cell("recv date"),
		UnitCost:  parseUnitCost(cell("unit cost")),
		CID:       cell("cid"),
		MENumber:  cell("me number"),
		PurCode:   cell("pur code"),
		Est:       cell("est"),
		Use:       cell("use"),
		Notes1:    cell("notes1"),
		Notes2:    cell("notes2"),
	}, nil
}

// parseUnitCost reads a money cell leniently: currency symbols, commas
// and spaces are stripped, and anything still unparseable loads as
// zero rather than failing the row.
func parseUnitCost(value string) decimal.Decimal {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(value)
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseQty accepts plain integers and spreadsheet-style floats ("25.0").
func parseQty(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", value)
	}
	return int(f), nil
}
