// =============================================================================
// GL Toolbox - Record Source: XLSX Reader
// =============================================================================
//
// Streaming XLSX reader built on the excelize row iterator, so large
// workbook exports are not decoded into memory at once. Only the first
// worksheet is read; GL exports ship one sheet per file.
//
// =============================================================================

package source

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

type xlsxReader struct {
	file       *excelize.File
	rows       *excelize.Rows
	headers    []string
	exposed    []string
	currentRow map[string]string
	rowNumber  int
	err        error
}

// newXLSXReader opens a workbook and positions the iterator past the header
// row of the first sheet.
func newXLSXReader(path string, o options) (*xlsxReader, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		file.Close()
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}

	rows, err := file.Rows(sheets[0])
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	r := &xlsxReader{file: file, rows: rows}

	if !rows.Next() {
		r.closeAll()
		return nil, fmt.Errorf("%s: sheet %q is empty", path, sheets[0])
	}
	header, err := rows.Columns()
	if err != nil {
		r.closeAll()
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	r.rowNumber++

	for _, h := range header {
		r.headers = append(r.headers, strings.TrimSpace(h))
	}

	exposed, err := checkColumns(r.headers, o.columns)
	if err != nil {
		r.closeAll()
		return nil, err
	}
	r.exposed = exposed

	return r, nil
}

// Next advances to the next data row, skipping fully empty rows.
func (r *xlsxReader) Next() bool {
	if r.err != nil {
		return false
	}

	for r.rows.Next() {
		raw, err := r.rows.Columns()
		if err != nil {
			r.err = fmt.Errorf("error reading row %d: %w", r.rowNumber+1, err)
			return false
		}
		r.rowNumber++

		if isRowEmpty(raw) {
			continue
		}

		r.currentRow = projectRow(r.headers, r.exposed, raw)
		return true
	}

	if err := r.rows.Error(); err != nil {
		r.err = fmt.Errorf("error iterating rows: %w", err)
	}
	return false
}

func (r *xlsxReader) Row() map[string]string {
	return r.currentRow
}

func (r *xlsxReader) Headers() []string {
	return r.exposed
}

func (r *xlsxReader) Err() error {
	return r.err
}

func (r *xlsxReader) Close() error {
	return r.closeAll()
}

func (r *xlsxReader) closeAll() error {
	err := r.rows.Close()
	if cerr := r.file.Close(); err == nil {
		err = cerr
	}
	return err
}
