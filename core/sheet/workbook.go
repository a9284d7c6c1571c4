package sheet

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"
)

// RawRow is one spreadsheet row as an ordered list of cell values.
// Cells are raw strings exactly as the workbook holds them; normalization
// happens downstream.
type RawRow []string

// Workbook reads and mutates the survey workbook snapshot held in object storage.
// Reads are idempotent: every call downloads the current snapshot object.
type Workbook struct {
	client Client
	cfg    Config
}

// NewWorkbook creates a workbook accessor over the given storage client.
func NewWorkbook(client Client, cfg Config) *Workbook {
	return &Workbook{client: client, cfg: cfg}
}

// ReadCaseRows returns all data rows from the master/detail case sheet.
// The header row is skipped.
func (w *Workbook) ReadCaseRows(ctx context.Context) ([]RawRow, error) {
	return w.readRows(ctx, w.cfg.CaseSheet)
}

// ReadSummaryRows returns all data rows from the contract summary sheet.
// The header row is skipped.
func (w *Workbook) ReadSummaryRows(ctx context.Context) ([]RawRow, error) {
	return w.readRows(ctx, w.cfg.SummarySheet)
}

func (w *Workbook) readRows(ctx context.Context, sheetName string) ([]RawRow, error) {
	f, err := w.open(ctx)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	// Row 1 is the header
	if len(rows) <= 1 {
		return nil, nil
	}

	out := make([]RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out = append(out, RawRow(row))
	}
	return out, nil
}

// AppendRow appends a single row at the bottom of the given sheet and writes
// the workbook back to storage. Used by direct single-record edits, never by
// bulk reconciliation.
func (w *Workbook) AppendRow(ctx context.Context, sheetName string, row RawRow) error {
	f, err := w.open(ctx)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, rowValues(row)); err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}

	return w.save(ctx, f)
}

// UpdateRow replaces the row whose primary display identifier matches matchKey
// and writes the workbook back. Returns an error if no row matches.
func (w *Workbook) UpdateRow(ctx context.Context, sheetName, matchKey string, row RawRow) error {
	f, err := w.open(ctx)
	if err != nil {
		return err
	}
	defer f.Close()

	idx, err := w.findRow(f, sheetName, matchKey)
	if err != nil {
		return err
	}

	cell, err := excelize.CoordinatesToCellName(1, idx)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, rowValues(row)); err != nil {
		return fmt.Errorf("failed to update row: %w", err)
	}

	return w.save(ctx, f)
}

// UpdateCell sets a single cell (zero-based column) in the row matching
// matchKey and writes the workbook back. Returns an error if no row matches.
func (w *Workbook) UpdateCell(ctx context.Context, sheetName, matchKey string, col int, value string) error {
	f, err := w.open(ctx)
	if err != nil {
		return err
	}
	defer f.Close()

	idx, err := w.findRow(f, sheetName, matchKey)
	if err != nil {
		return err
	}

	cell, err := excelize.CoordinatesToCellName(col+1, idx)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		return fmt.Errorf("failed to update cell: %w", err)
	}

	return w.save(ctx, f)
}

// DeleteRow removes the row whose primary display identifier matches matchKey
// and writes the workbook back. Returns an error if no row matches.
func (w *Workbook) DeleteRow(ctx context.Context, sheetName, matchKey string) error {
	f, err := w.open(ctx)
	if err != nil {
		return err
	}
	defer f.Close()

	idx, err := w.findRow(f, sheetName, matchKey)
	if err != nil {
		return err
	}

	if err := f.RemoveRow(sheetName, idx); err != nil {
		return fmt.Errorf("failed to delete row: %w", err)
	}

	return w.save(ctx, f)
}

// findRow returns the 1-based index of the row matching matchKey.
// It checks the expected identifier column first and falls back to scanning
// every column, since older workbook revisions moved the identifier around.
func (w *Workbook) findRow(f *excelize.File, sheetName, matchKey string) (int, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	// Expected position: first column
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) > 0 && row[0] == matchKey {
			return i + 1, nil
		}
	}

	// Fallback: scan every column
	for i, row := range rows {
		if i == 0 {
			continue
		}
		for _, cell := range row {
			if cell == matchKey {
				return i + 1, nil
			}
		}
	}

	return 0, fmt.Errorf("row with key %q not found in sheet %s", matchKey, sheetName)
}

func (w *Workbook) open(ctx context.Context) (*excelize.File, error) {
	reader, err := w.client.GetObject(ctx, w.cfg.Bucket, w.cfg.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get workbook object: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook object: %w", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse workbook: %w", err)
	}
	return f, nil
}

func (w *Workbook) save(ctx context.Context, f *excelize.File) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("failed to serialize workbook: %w", err)
	}

	_, err = w.client.PutObject(
		ctx,
		w.cfg.Bucket,
		w.cfg.Object,
		bytes.NewReader(buf.Bytes()),
		int64(buf.Len()),
		minio.PutObjectOptions{ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	)
	if err != nil {
		return fmt.Errorf("failed to write workbook object: %w", err)
	}
	return nil
}

func rowValues(row RawRow) *[]interface{} {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}
	return &values
}
