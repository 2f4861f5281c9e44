// =============================================================================
// GL Toolbox - Amount Normalizer
// =============================================================================
//
// GL exports carry amounts as text. This module coerces a designated column
// to signed floating-point values for the whole record set at once.
//
// CONTRACT:
//   - The column must exist in the header set, otherwise SchemaError.
//   - Every value must parse as a finite number, otherwise
//     NonNumericValueError. Tokens like "NaN" and "Inf" count as
//     non-numeric: they are data errors in a ledger, and NaN keys would
//     poison the matching buckets. Normalization is all-or-nothing; there
//     is no per-row tolerance.
//   - Zero and negative zero are non-negative. A value v is "negative"
//     iff v < 0 (the sign bit alone is ignored).
//
// =============================================================================

package ledger

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amounts coerces the given column to a slice of signed values, parallel to
// rs.Records.
//
// PARAMETERS:
//   - rs: The record set to normalize.
//   - column: The name of the amount column.
//
// RETURNS:
//   - A slice of signed amounts, one per record, in record order.
//   - SchemaError if the column is absent, NonNumericValueError if any value
//     fails to parse.
func Amounts(rs *RecordSet, column string) ([]float64, error) {
	if !rs.HasColumn(column) {
		return nil, &SchemaError{Column: column, Available: rs.Headers}
	}

	amounts := make([]float64, len(rs.Records))
	for i, rec := range rs.Records {
		v, err := ParseAmount(rec.Fields[column])
		if err != nil {
			return nil, &NonNumericValueError{
				Column:   column,
				Value:    rec.Fields[column],
				Position: rec.Position,
			}
		}
		amounts[i] = v
	}

	return amounts, nil
}

// ParseAmount parses a single cell value as a signed amount.
// Surrounding whitespace is tolerated; anything else must be a plain,
// finite number. strconv accepts "NaN" and "Inf" spellings, which are not
// amounts, so those are rejected here.
func ParseAmount(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite amount %q", raw)
	}
	return v, nil
}
