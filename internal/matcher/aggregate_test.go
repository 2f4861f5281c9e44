package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/gl-toolbox/internal/ledger"
)

func recordSet(txIDs []string, amounts []float64) (*ledger.RecordSet, []float64) {
	rs := ledger.NewRecordSet()
	rs.MergeHeaders([]string{"TxID", "Amount"})
	for _, id := range txIDs {
		rs.Append("test.csv", map[string]string{"TxID": id})
	}
	return rs, amounts
}

func TestGroupByIDSumsPerIdentifier(t *testing.T) {
	rs, amounts := recordSet(
		[]string{"T1", "T2", "T1", "T2"},
		[]float64{20, -50, 30, 10},
	)

	groups, err := GroupByID(rs, "TxID", amounts)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "T1", groups[0].ID)
	assert.InDelta(t, 50, groups[0].Sum, 0)
	assert.Equal(t, []int{0, 2}, groups[0].Rows)

	assert.Equal(t, "T2", groups[1].ID)
	assert.InDelta(t, -40, groups[1].Sum, 0)
	assert.Equal(t, []int{1, 3}, groups[1].Rows)
}

func TestGroupByIDFirstSeenOrder(t *testing.T) {
	// Groups come out in first-seen order, not sorted.
	rs, amounts := recordSet(
		[]string{"Z9", "A1", "M5", "A1"},
		[]float64{1, 2, 3, 4},
	)

	groups, err := GroupByID(rs, "TxID", amounts)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Z9", groups[0].ID)
	assert.Equal(t, "A1", groups[1].ID)
	assert.Equal(t, "M5", groups[2].ID)
}

func TestGroupByIDMissingIdentifiersShareOneGroup(t *testing.T) {
	rs, amounts := recordSet(
		[]string{"T1", "", "T1", ""},
		[]float64{10, 5, 10, 7},
	)

	groups, err := GroupByID(rs, "TxID", amounts)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "", groups[1].ID)
	assert.InDelta(t, 12, groups[1].Sum, 0)
	assert.Equal(t, []int{1, 3}, groups[1].Rows)
}

func TestGroupByIDMissingColumn(t *testing.T) {
	rs, amounts := recordSet([]string{"T1"}, []float64{10})

	_, err := GroupByID(rs, "TransactionID", amounts)

	var schemaErr *ledger.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "TransactionID", schemaErr.Column)
}

func TestRemovalIDsUnionsBothSides(t *testing.T) {
	// T1 sums to +50, T2 to -50: the pair removes both identifiers.
	rs, amounts := recordSet(
		[]string{"T1", "T1", "T2"},
		[]float64{20, 30, -50},
	)

	groups, err := GroupByID(rs, "TxID", amounts)
	require.NoError(t, err)

	pairs := FindPairs(KeyedSums(groups), nil)
	require.Len(t, pairs, 1)

	removal := RemovalIDs(groups, pairs)
	assert.True(t, removal["T1"])
	assert.True(t, removal["T2"])
	assert.Len(t, removal, 2)
}

func TestRemovalIDsEmptyWhenNoPairs(t *testing.T) {
	rs, amounts := recordSet([]string{"T1", "T2"}, []float64{10, 20})

	groups, err := GroupByID(rs, "TxID", amounts)
	require.NoError(t, err)

	removal := RemovalIDs(groups, FindPairs(KeyedSums(groups), nil))
	assert.Empty(t, removal)
}

func TestKeyedSumsUsesGroupIndexAsPosition(t *testing.T) {
	groups := []TxGroup{{ID: "A", Sum: 1.5}, {ID: "B", Sum: -1.5}}

	keyed := KeyedSums(groups)
	require.Len(t, keyed, 2)
	assert.Equal(t, KeyedAmount{Position: 0, Amount: 1.5}, keyed[0])
	assert.Equal(t, KeyedAmount{Position: 1, Amount: -1.5}, keyed[1])
}
