package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/gl-toolbox/internal/ledger"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeWorkbook(t *testing.T, dir, name string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

// =============================================================================
// DISCOVERY
// =============================================================================

func TestDiscoverSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "gl.csv", "A,B\n1,2\n")

	files, err := Discover(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscoverDirectorySortedByName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_export.csv", "A\n1\n")
	writeFile(t, dir, "a_export.csv", "A\n2\n")
	writeFile(t, dir, "notes.txt", "ignore me")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	files, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a_export.csv"), files[0])
	assert.Equal(t, filepath.Join(dir, "b_export.csv"), files[1])
}

func TestDiscoverMissingPath(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))

	var fmtErr *ledger.SourceFormatError
	require.ErrorAs(t, err, &fmtErr)
}

func TestDiscoverUnsupportedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "gl.parquet", "not tabular here")

	_, err := Discover(path)

	var fmtErr *ledger.SourceFormatError
	require.ErrorAs(t, err, &fmtErr)
}

func TestDiscoverFileRejectsDirectory(t *testing.T) {
	_, err := DiscoverFile(t.TempDir())

	var fmtErr *ledger.SourceFormatError
	require.ErrorAs(t, err, &fmtErr)
}

// =============================================================================
// READERS
// =============================================================================

func TestCSVReaderStreamsRows(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "gl.csv", "TxID,Amount\nT1,10\n\nT2, -5\n")

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, []string{"TxID", "Amount"}, r.Headers())

	require.True(t, r.Next())
	assert.Equal(t, map[string]string{"TxID": "T1", "Amount": "10"}, r.Row())

	// The blank line is skipped; short cells are trimmed.
	require.True(t, r.Next())
	assert.Equal(t, "-5", r.Row()["Amount"])

	assert.False(t, r.Next())
	assert.NoError(t, r.Err())
}

func TestCSVReaderShortRowPadsEmptyCells(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "gl.csv", "A,B,C\n1,2\n")

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	require.True(t, r.Next())
	assert.Equal(t, "", r.Row()["C"])
}

func TestCSVReaderColumnSubset(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "gl.csv", "TxID,Amount,Memo\nT1,10,coffee\n")

	r, err := Open(path, WithColumns("Amount", "TxID"))
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, []string{"Amount", "TxID"}, r.Headers())

	require.True(t, r.Next())
	row := r.Row()
	assert.Equal(t, "10", row["Amount"])
	_, hasMemo := row["Memo"]
	assert.False(t, hasMemo)
}

func TestCSVReaderMissingRequestedColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "gl.csv", "TxID,Amount\nT1,10\n")

	_, err := Open(path, WithColumns("Betrag"))

	var schemaErr *ledger.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Betrag", schemaErr.Column)
}

func TestXLSXReaderStreamsRows(t *testing.T) {
	dir := t.TempDir()
	path := writeWorkbook(t, dir, "gl.xlsx", [][]interface{}{
		{"TxID", "Amount"},
		{"T1", "12.5"},
		{"T2", "-12.5"},
	})

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, []string{"TxID", "Amount"}, r.Headers())

	require.True(t, r.Next())
	assert.Equal(t, "T1", r.Row()["TxID"])
	require.True(t, r.Next())
	assert.Equal(t, "-12.5", r.Row()["Amount"])
	assert.False(t, r.Next())
	assert.NoError(t, r.Err())
}

func TestOpenUnknownExtension(t *testing.T) {
	_, err := Open("gl.json")

	var fmtErr *ledger.SourceFormatError
	require.ErrorAs(t, err, &fmtErr)
}

// =============================================================================
// INGESTION
// =============================================================================

func TestReadAllConcatenatesWithGlobalPositions(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "TxID,Amount\nT1,1\nT2,2\n")
	b := writeFile(t, dir, "b.csv", "TxID,Amount\nT3,3\n")

	rs, err := ReadAll([]string{a, b}, nil, nil)
	require.NoError(t, err)

	require.Equal(t, 3, rs.Len())
	assert.Equal(t, 2, rs.Records[2].Position)
	assert.Equal(t, b, rs.Records[2].Source)
	assert.Equal(t, "T3", rs.Records[2].Fields["TxID"])
}

func TestReadAllMergesNewColumns(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "TxID,Amount\nT1,1\n")
	b := writeFile(t, dir, "b.csv", "TxID,Amount,Branch\nT2,2,North\n")

	rs, err := ReadAll([]string{a, b}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"TxID", "Amount", "Branch"}, rs.Headers)
}

func TestReadAllFilteredRowsConsumeNoPositions(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "Account,Amount\n4001,1\n9999,2\n4001,3\n")

	rs, err := ReadAll([]string{a}, nil, func(fields map[string]string) (bool, error) {
		return fields["Account"] == "4001", nil
	})
	require.NoError(t, err)

	require.Equal(t, 2, rs.Len())
	assert.Equal(t, 0, rs.Records[0].Position)
	assert.Equal(t, 1, rs.Records[1].Position)
	assert.Equal(t, "3", rs.Records[1].Fields["Amount"])
}

// =============================================================================
// SCOPE FILTER
// =============================================================================

var layouts = []string{"2006-01-02", "01/02/2006"}

func scopeFor(start, end string) Scope {
	s, _ := time.Parse("2006-01-02", start)
	e, _ := time.Parse("2006-01-02", end)
	return Scope{
		AccountColumn: "Account",
		Account:       "4001",
		DateColumn:    "PostDate",
		Start:         s,
		End:           e,
		Layouts:       layouts,
	}
}

func TestScopeFilterInclusiveBounds(t *testing.T) {
	filter := scopeFor("2024-01-01", "2024-03-31").Filter()

	keep, err := filter(map[string]string{"Account": "4001", "PostDate": "2024-01-01"})
	require.NoError(t, err)
	assert.True(t, keep)

	keep, err = filter(map[string]string{"Account": "4001", "PostDate": "2024-03-31"})
	require.NoError(t, err)
	assert.True(t, keep)

	keep, err = filter(map[string]string{"Account": "4001", "PostDate": "2024-04-01"})
	require.NoError(t, err)
	assert.False(t, keep)
}

func TestScopeFilterAccountMismatch(t *testing.T) {
	filter := scopeFor("2024-01-01", "2024-03-31").Filter()

	keep, err := filter(map[string]string{"Account": "9999", "PostDate": "2024-02-01"})
	require.NoError(t, err)
	assert.False(t, keep)
}

func TestScopeFilterAlternateLayout(t *testing.T) {
	filter := scopeFor("2024-01-01", "2024-03-31").Filter()

	keep, err := filter(map[string]string{"Account": "4001", "PostDate": "02/15/2024"})
	require.NoError(t, err)
	assert.True(t, keep)
}

func TestScopeFilterBadDateAborts(t *testing.T) {
	filter := scopeFor("2024-01-01", "2024-03-31").Filter()

	_, err := filter(map[string]string{"Account": "4001", "PostDate": "soonish"})
	require.Error(t, err)
}

func TestScopeFilterBadDateInOtherAccountAborts(t *testing.T) {
	// Date cells are checked for every scanned row, not only rows of the
	// selected account: one corrupt date anywhere in a file fails the run.
	filter := scopeFor("2024-01-01", "2024-03-31").Filter()

	_, err := filter(map[string]string{"Account": "9999", "PostDate": "soonish"})
	require.Error(t, err)
}
