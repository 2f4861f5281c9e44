// =============================================================================
// GL Toolbox - Identifier Aggregator
// =============================================================================
//
// Identifier-mode reconciliation does not match individual rows. It first
// sums every row amount per transaction identifier, feeds the per-identifier
// sums into the pair-matching engine, and then removes ALL rows of every
// identifier that took part in a matched pair, on either side, regardless of
// each row's own amount.
//
// Groups preserve first-seen identifier order (not sorted), so the matching
// outcome stays deterministic for a given ingestion order. Rows with a
// missing identifier (empty cell) form a single group of their own.
//
// =============================================================================

package matcher

import (
	"github.com/ginjaninja78/gl-toolbox/internal/ledger"
)

// TxGroup is one transaction identifier together with the sum of every
// amount recorded under it and the positions of its member rows.
type TxGroup struct {
	// ID is the identifier's original cell value. The empty string is the
	// shared group for rows with a missing identifier.
	ID string

	// Sum is the plain float64 accumulation of the member amounts. No
	// currency rounding is applied, so very large groups can drift; that
	// matches the accumulation the matching output is compared against.
	Sum float64

	// Rows lists the member record positions in ingestion order.
	Rows []int
}

// GroupByID aggregates a record set into per-identifier groups.
//
// PARAMETERS:
//   - rs: The record set being reconciled.
//   - idColumn: The transaction identifier column.
//   - amounts: Normalized amounts parallel to rs.Records (see ledger.Amounts).
//
// RETURNS:
//   - Groups in first-seen identifier order.
//   - SchemaError if the identifier column is absent.
func GroupByID(rs *ledger.RecordSet, idColumn string, amounts []float64) ([]TxGroup, error) {
	if !rs.HasColumn(idColumn) {
		return nil, &ledger.SchemaError{Column: idColumn, Available: rs.Headers}
	}

	index := make(map[string]int)
	var groups []TxGroup

	for i, rec := range rs.Records {
		id := rec.Fields[idColumn]
		gi, ok := index[id]
		if !ok {
			gi = len(groups)
			index[id] = gi
			groups = append(groups, TxGroup{ID: id})
		}
		groups[gi].Sum += amounts[i]
		groups[gi].Rows = append(groups[gi].Rows, rec.Position)
	}

	return groups, nil
}

// KeyedSums adapts groups to the matching engine's input: the position is
// the group index, the amount is the group sum.
func KeyedSums(groups []TxGroup) []KeyedAmount {
	keyed := make([]KeyedAmount, len(groups))
	for i, g := range groups {
		keyed[i] = KeyedAmount{Position: i, Amount: g.Sum}
	}
	return keyed
}

// RemovalIDs derives the removal identifier set from matched group pairs:
// the union of the identifiers at both positions of every pair. Pair
// positions index into groups.
func RemovalIDs(groups []TxGroup, pairs []Pair) map[string]bool {
	removal := make(map[string]bool, len(pairs)*2)
	for _, p := range pairs {
		removal[groups[p.Pos].ID] = true
		removal[groups[p.Neg].ID] = true
	}
	return removal
}
