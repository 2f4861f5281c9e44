// =============================================================================
// GL Toolbox - Output Sink
// =============================================================================
//
// Writes a result set to a destination file or to standard output. The
// output format is inferred from the destination's extension: .xlsx writes a
// workbook via excelize, anything else writes CSV. An empty destination
// streams CSV to stdout, which keeps the commands pipeable.
//
// Cells are written in the ingested header order; a record missing a column
// writes an empty cell.
//
// =============================================================================

package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/gl-toolbox/internal/ledger"
)

// Write serializes records to outPath, or to stdout when outPath is empty.
func Write(headers []string, records []ledger.Record, outPath string) error {
	if outPath == "" {
		return WriteCSV(os.Stdout, headers, records)
	}

	if strings.ToLower(filepath.Ext(outPath)) == ".xlsx" {
		return writeXLSX(headers, records, outPath)
	}

	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := WriteCSV(file, headers, records); err != nil {
		return err
	}
	return file.Close()
}

// WriteCSV writes the header row followed by one row per record.
func WriteCSV(w io.Writer, headers []string, records []ledger.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	row := make([]string, len(headers))
	for _, rec := range records {
		for i, h := range headers {
			row[i] = rec.Fields[h]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rec.Position, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// writeXLSX writes records to a single-sheet workbook.
func writeXLSX(headers []string, records []ledger.Record, outPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headerCells := make([]interface{}, len(headers))
	for i, h := range headers {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, rec := range records {
		cells := make([]interface{}, len(headers))
		for j, h := range headers {
			cells[j] = rec.Fields[h]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rec.Position, err)
		}
	}

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
