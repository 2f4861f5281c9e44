// =============================================================================
// GL Toolbox - Record Source: Streaming Readers
// =============================================================================
//
// Readers stream rows from a GL export file one at a time instead of loading
// the whole file, which keeps the two-pass lookup bounded in memory on large
// sources.
//
// USAGE:
//   r, err := source.Open(path)
//   if err != nil {
//       return err
//   }
//   defer r.Close()
//
//   for r.Next() {
//       row := r.Row()
//       // Process the row...
//   }
//
//   if err := r.Err(); err != nil {
//       return err
//   }
//
// The first row of every file is the header row. A reader opened with a
// column subset validates that the requested columns exist and restricts
// Row() and Headers() to them; this is how lookup's first pass reads only
// the amount and identifier columns.
//
// =============================================================================

package source

import (
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/gl-toolbox/internal/ledger"
)

// Reader streams rows from a single tabular file.
type Reader interface {
	// Next advances to the next data row. It returns false at end of file
	// or on error; check Err afterwards.
	Next() bool

	// Row returns the current row as header -> value. Rows missing trailing
	// cells report the empty string for those columns.
	Row() map[string]string

	// Headers returns the column headers, restricted to the requested
	// subset when one was given.
	Headers() []string

	// Err returns the first error encountered while reading.
	Err() error

	// Close releases the underlying file.
	Close() error
}

// Option configures a reader.
type Option func(*options)

type options struct {
	columns []string
}

// WithColumns restricts the reader to the given columns. Opening fails with
// SchemaError if the file's header lacks any of them.
func WithColumns(columns ...string) Option {
	return func(o *options) {
		o.columns = columns
	}
}

// Open creates a reader for the given file, selected by extension.
func Open(path string, opts ...Option) (Reader, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return newCSVReader(path, o)
	case ".xlsx":
		return newXLSXReader(path, o)
	default:
		return nil, &ledger.SourceFormatError{Path: path}
	}
}

// checkColumns validates a requested column subset against a file's full
// header row, returning the subset to expose. An empty request exposes the
// full header.
func checkColumns(headers, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return headers, nil
	}

	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	for _, col := range requested {
		if !present[col] {
			return nil, &ledger.SchemaError{Column: col, Available: headers}
		}
	}

	return requested, nil
}

// projectRow maps one raw row onto the exposed headers. fullHeaders is the
// file's complete header row; exposed is the (possibly restricted) header
// set Row() reports.
func projectRow(fullHeaders, exposed, raw []string) map[string]string {
	byHeader := make(map[string]string, len(fullHeaders))
	for i, h := range fullHeaders {
		if i < len(raw) {
			byHeader[h] = strings.TrimSpace(raw[i])
		} else {
			byHeader[h] = ""
		}
	}

	row := make(map[string]string, len(exposed))
	for _, h := range exposed {
		row[h] = byHeader[h]
	}
	return row
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
