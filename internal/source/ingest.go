// =============================================================================
// GL Toolbox - Record Source: Ingestion
// =============================================================================
//
// Ingestion concatenates rows from an ordered list of files into one record
// set, assigning each kept row its global position. Matching outcomes depend
// on input order, so files are always consumed sequentially in the order
// discovery produced (sorted by name) -- this is the canonical total order
// the matching engine requires.
//
// =============================================================================

package source

import (
	"fmt"

	"github.com/ginjaninja78/gl-toolbox/internal/ledger"
)

// RowFilter decides whether an ingested row is kept. A filter error aborts
// the whole run; there is no partial output.
type RowFilter func(fields map[string]string) (bool, error)

// ReadAll ingests every file into a single record set.
//
// PARAMETERS:
//   - paths: Files in canonical order, as returned by Discover.
//   - columns: Optional column subset; nil reads full rows.
//   - filter: Optional row predicate; nil keeps every row. Filtered-out
//     rows do not consume positions.
//
// RETURNS:
//   - The concatenated record set, with positions assigned in kept-row
//     order across all files.
func ReadAll(paths []string, columns []string, filter RowFilter) (*ledger.RecordSet, error) {
	rs := ledger.NewRecordSet()

	for _, path := range paths {
		if err := readInto(rs, path, columns, filter); err != nil {
			return nil, err
		}
	}

	return rs, nil
}

// readInto appends one file's kept rows to the record set.
func readInto(rs *ledger.RecordSet, path string, columns []string, filter RowFilter) error {
	var opts []Option
	if len(columns) > 0 {
		opts = append(opts, WithColumns(columns...))
	}

	r, err := Open(path, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer r.Close()

	rs.MergeHeaders(r.Headers())

	for r.Next() {
		row := r.Row()
		if filter != nil {
			keep, err := filter(row)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if !keep {
				continue
			}
		}
		rs.Append(path, row)
	}

	if err := r.Err(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
