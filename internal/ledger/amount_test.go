package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amountSet(values ...string) *RecordSet {
	rs := NewRecordSet()
	rs.MergeHeaders([]string{"Amount", "Memo"})
	for _, v := range values {
		rs.Append("test.csv", map[string]string{"Amount": v, "Memo": "x"})
	}
	return rs
}

func TestAmountsParsesSignedValues(t *testing.T) {
	rs := amountSet("10.50", "-3", " 2.25 ", "0")

	amounts, err := Amounts(rs, "Amount")
	require.NoError(t, err)
	assert.Equal(t, []float64{10.5, -3, 2.25, 0}, amounts)
}

func TestAmountsMissingColumn(t *testing.T) {
	rs := amountSet("1")

	_, err := Amounts(rs, "Betrag")

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Betrag", schemaErr.Column)
	assert.Contains(t, schemaErr.Error(), "Amount")
}

func TestAmountsNonNumericFailsWholeRun(t *testing.T) {
	rs := amountSet("1", "n/a", "3")

	_, err := Amounts(rs, "Amount")

	var numErr *NonNumericValueError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "Amount", numErr.Column)
	assert.Equal(t, "n/a", numErr.Value)
	assert.Equal(t, 1, numErr.Position)
}

func TestAmountsRejectsNonFiniteValues(t *testing.T) {
	// strconv parses "NaN" and "Inf" spellings, but they are not ledger
	// amounts: a NaN key never matches anything and +Inf/-Inf rows would
	// cancel each other. All of them abort the run as non-numeric.
	for _, cell := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "inf"} {
		rs := amountSet("1", cell)

		_, err := Amounts(rs, "Amount")

		var numErr *NonNumericValueError
		require.ErrorAs(t, err, &numErr, "cell %q", cell)
		assert.Equal(t, cell, numErr.Value)
	}
}

func TestAmountsEmptyCellIsNonNumeric(t *testing.T) {
	rs := amountSet("1", "")

	_, err := Amounts(rs, "Amount")

	var numErr *NonNumericValueError
	require.ErrorAs(t, err, &numErr)
}

func TestParseAmountNegativeZero(t *testing.T) {
	v, err := ParseAmount("-0")
	require.NoError(t, err)

	// -0 parses to negative zero, which is non-negative for matching
	// purposes: v < 0 is false.
	assert.False(t, v < 0)
}

func TestRecordSetMergeHeadersFirstSeenOrder(t *testing.T) {
	rs := NewRecordSet()
	rs.MergeHeaders([]string{"A", "B"})
	rs.MergeHeaders([]string{"B", "C", "A"})

	assert.Equal(t, []string{"A", "B", "C"}, rs.Headers)
	assert.True(t, rs.HasColumn("C"))
	assert.False(t, rs.HasColumn("D"))
}

func TestRecordSetAppendAssignsPositions(t *testing.T) {
	rs := NewRecordSet()
	rs.Append("a.csv", map[string]string{"X": "1"})
	rs.Append("b.csv", map[string]string{"X": "2"})

	require.Equal(t, 2, rs.Len())
	assert.Equal(t, 0, rs.Records[0].Position)
	assert.Equal(t, 1, rs.Records[1].Position)
	assert.Equal(t, "b.csv", rs.Records[1].Source)
}
