// =============================================================================
// GL Toolbox - Record Source: CSV Reader
// =============================================================================
//
// Streaming CSV reader. Legacy exports are not always strict CSV, so the
// reader is configured leniently: lazy quotes, leading whitespace trimmed,
// and a variable number of fields per row (short rows pad with empty cells).
//
// =============================================================================

package source

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

type csvReader struct {
	file       *os.File
	reader     *csv.Reader
	headers    []string // full header row of the file
	exposed    []string // headers Row() reports (subset when restricted)
	currentRow map[string]string
	rowNumber  int
	err        error
}

// newCSVReader opens a CSV file and reads its header row.
func newCSVReader(path string, o options) (*csvReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	reader := csv.NewReader(bufio.NewReader(file))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	r := &csvReader{file: file, reader: reader}

	header, err := reader.Read()
	if err == io.EOF {
		file.Close()
		return nil, fmt.Errorf("%s: file is empty", path)
	}
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	r.rowNumber++

	for _, h := range header {
		r.headers = append(r.headers, strings.TrimSpace(h))
	}

	exposed, err := checkColumns(r.headers, o.columns)
	if err != nil {
		file.Close()
		return nil, err
	}
	r.exposed = exposed

	return r, nil
}

// Next advances to the next data row, skipping fully empty rows.
func (r *csvReader) Next() bool {
	if r.err != nil {
		return false
	}

	for {
		raw, err := r.reader.Read()
		if err == io.EOF {
			return false
		}
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
}

func (r *csvReader) Row() map[string]string {
	return r.currentRow
}

func (r *csvReader) Headers() []string {
	return r.exposed
}

func (r *csvReader) Err() error {
	return r.err
}

func (r *csvReader) Close() error {
	return r.file.Close()
}
