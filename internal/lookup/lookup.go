// =============================================================================
// GL Toolbox - Transaction Lookup Engine
// =============================================================================
//
// txlookup answers "which transactions involve this exact amount" over a
// potentially large, multi-file GL export. It is deliberately a two-phase
// protocol rather than a single accumulation:
//
//   Pass 1: stream every file reading only the amount and identifier
//           columns, collecting the set of identifiers that have at least
//           one row whose amount exactly equals the target.
//   Pass 2: re-stream every file reading full rows, emitting each row whose
//           identifier is in the pass-1 set.
//
// Keeping the passes separate bounds memory: full rows are only held for
// identifiers already known to be relevant. No matching logic is involved.
//
// Amount comparison is exact floating-point equality, no tolerance. A cell
// that does not parse as a number simply never equals the target; lookup
// does not normalize and therefore never fails on messy amount cells.
//
// =============================================================================

package lookup

import (
	"github.com/ginjaninja78/gl-toolbox/internal/ledger"
	"github.com/ginjaninja78/gl-toolbox/internal/source"
)

// Options configures a lookup run.
type Options struct {
	// AmountColumn holds the numeric amount.
	AmountColumn string

	// TxColumn holds the transaction identifier.
	TxColumn string

	// Target is the exact amount to find. Negative for debits.
	Target float64
}

// Result is the outcome of a lookup run.
type Result struct {
	// Headers is the column order for the output sink.
	Headers []string

	// Records holds every row belonging to a hit identifier, in file/row
	// order.
	Records []ledger.Record

	// TxIDs is the identifier set discovered by pass 1.
	TxIDs map[string]bool
}

// StatusFunc receives human progress messages between passes; may be nil.
type StatusFunc func(format string, args ...any)

// Run executes the two-pass lookup over the given files.
//
// PARAMETERS:
//   - paths: Files in canonical order, as returned by source.Discover.
//   - opts: Column names and the target amount.
//   - status: Optional progress reporter.
//
// RETURNS:
//   - The result, or NoMatchError if pass 1 finds no identifier carrying
//     the target amount (pass 2 is never started in that case).
func Run(paths []string, opts Options, status StatusFunc) (*Result, error) {
	txIDs, err := discoverTxIDs(paths, opts)
	if err != nil {
		return nil, err
	}
	if len(txIDs) == 0 {
		return nil, &ledger.NoMatchError{Amount: opts.Target}
	}

	if status != nil {
		status("found %d Tx-ID(s) with amount %v", len(txIDs), opts.Target)
	}

	return collectRows(paths, opts, txIDs)
}

// discoverTxIDs is pass 1: collect identifiers that carry the target amount.
// Rows with a missing identifier are skipped; an anonymous hit has no
// transaction to expand in pass 2.
func discoverTxIDs(paths []string, opts Options) (map[string]bool, error) {
	txIDs := make(map[string]bool)

	for _, path := range paths {
		r, err := source.Open(path, source.WithColumns(opts.AmountColumn, opts.TxColumn))
		if err != nil {
			return nil, err
		}

		for r.Next() {
			row := r.Row()
			id := row[opts.TxColumn]
			if id == "" {
				continue
			}
			amount, err := ledger.ParseAmount(row[opts.AmountColumn])
			if err != nil {
				continue
			}
			if amount == opts.Target {
				txIDs[id] = true
			}
		}

		err = r.Err()
		r.Close()
		if err != nil {
			return nil, err
		}
	}

	return txIDs, nil
}

// collectRows is pass 2: re-read full rows and keep members of the set.
func collectRows(paths []string, opts Options, txIDs map[string]bool) (*Result, error) {
	rs, err := source.ReadAll(paths, nil, func(fields map[string]string) (bool, error) {
		return txIDs[fields[opts.TxColumn]], nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Headers: rs.Headers,
		Records: rs.Records,
		TxIDs:   txIDs,
	}, nil
}
