// =============================================================================
// GL Toolbox - Reconciliation Driver
// =============================================================================
//
// The driver orchestrates one reconciliation run over an ingested record
// set. It has two modes:
//
//   - Row mode (dedup): amounts are matched per row; each matched pair
//     removes exactly two rows.
//   - Identifier mode (dedupacct): amounts are summed per transaction
//     identifier; each matched pair removes every row of both identifiers,
//     which may be more than two rows and asymmetric in count.
//
// In both modes the survivor set preserves the relative order of the input.
// A run that finds zero pairs returns the full input unchanged, so a clean
// set is a fixed point of reconciliation.
//
// A normalization failure aborts the run before any matching begins; there
// is no partial output.
//
// =============================================================================

package reconcile

import (
	"github.com/ginjaninja78/gl-toolbox/internal/ledger"
	"github.com/ginjaninja78/gl-toolbox/internal/matcher"
)

// =============================================================================
// RESULT
// =============================================================================

// Result is the outcome of one reconciliation run.
type Result struct {
	// Headers is the column order of the ingested set, for the output sink.
	Headers []string

	// Survivors holds the records not removed by matching, in their
	// original relative order.
	Survivors []ledger.Record

	// Pairs is the raw output of the matching engine. In row mode the pair
	// positions are record positions; in identifier mode they are group
	// indices.
	Pairs []matcher.Pair

	// RemovedIDs lists the removed transaction identifiers in first-seen
	// order. Only populated in identifier mode.
	RemovedIDs []string

	// RowsRemoved is the number of records dropped from the input.
	RowsRemoved int
}

// Scope describes the account/date filter that produced the input of an
// identifier-mode run. It is only used to report an empty scope.
type Scope struct {
	Account string
	Start   string
	End     string
}

// =============================================================================
// ROW MODE
// =============================================================================

// Rows reconciles individual records: two rows whose amounts have equal
// magnitude and opposite sign cancel each other.
//
// PARAMETERS:
//   - rs: The ingested record set.
//   - amountColumn: The column holding signed amounts.
//   - observe: Optional matching progress observer; may be nil.
//
// RETURNS:
//   - The run result, or a normalization error before any matching happens.
func Rows(rs *ledger.RecordSet, amountColumn string, observe matcher.ProgressFunc) (*Result, error) {
	amounts, err := ledger.Amounts(rs, amountColumn)
	if err != nil {
		return nil, err
	}

	keyed := make([]matcher.KeyedAmount, len(rs.Records))
	for i, rec := range rs.Records {
		keyed[i] = matcher.KeyedAmount{Position: rec.Position, Amount: amounts[i]}
	}

	pairs := matcher.FindPairs(keyed, observe)
	removed := matcher.RemovedPositions(pairs)

	result := &Result{
		Headers:     rs.Headers,
		Pairs:       pairs,
		RowsRemoved: len(removed),
	}
	for _, rec := range rs.Records {
		if !removed[rec.Position] {
			result.Survivors = append(result.Survivors, rec)
		}
	}

	return result, nil
}

// =============================================================================
// IDENTIFIER MODE
// =============================================================================

// Identifiers reconciles per-identifier sums: two identifiers whose summed
// amounts cancel cause removal of every row belonging to either identifier.
//
// PARAMETERS:
//   - rs: The ingested, already scope-filtered record set.
//   - txColumn: The transaction identifier column.
//   - amountColumn: The column holding signed amounts.
//   - scope: The account/date scope that produced rs, for error reporting.
//
// RETURNS:
//   - The run result. An empty input reports NoScopeMatchError so callers
//     can tell "nothing to reconcile" from "everything reconciled".
func Identifiers(rs *ledger.RecordSet, txColumn, amountColumn string, scope Scope) (*Result, error) {
	if rs.Len() == 0 {
		return nil, &ledger.NoScopeMatchError{
			Account: scope.Account,
			Start:   scope.Start,
			End:     scope.End,
		}
	}

	amounts, err := ledger.Amounts(rs, amountColumn)
	if err != nil {
		return nil, err
	}

	groups, err := matcher.GroupByID(rs, txColumn, amounts)
	if err != nil {
		return nil, err
	}

	pairs := matcher.FindPairs(matcher.KeyedSums(groups), nil)
	removal := matcher.RemovalIDs(groups, pairs)

	result := &Result{
		Headers: rs.Headers,
		Pairs:   pairs,
	}
	for _, g := range groups {
		if removal[g.ID] {
			result.RemovedIDs = append(result.RemovedIDs, g.ID)
		}
	}
	for _, rec := range rs.Records {
		if removal[rec.Fields[txColumn]] {
			result.RowsRemoved++
			continue
		}
		result.Survivors = append(result.Survivors, rec)
	}

	return result, nil
}
