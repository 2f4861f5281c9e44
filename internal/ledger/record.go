// =============================================================================
// GL Toolbox - Ledger Record Model
// =============================================================================
//
// This package contains the shared data model used across the toolbox:
//   - Record / RecordSet: rows ingested from GL export files
//   - Amount normalization (see amount.go)
//   - The error taxonomy shared by all commands (see errors.go)
//
// Records are immutable once ingested. Matching never mutates a record; it
// only marks positions for removal, and survivors keep their original
// relative order.
//
// =============================================================================

package ledger

// =============================================================================
// RECORD TYPES
// =============================================================================

// Record is a single row from a GL export file.
type Record struct {
	// Position is the row's stable identity: its index within the full,
	// order-preserving concatenation of all ingested rows.
	Position int

	// Source is the path of the file the row was read from.
	Source string

	// Fields maps column header -> raw cell value.
	Fields map[string]string
}

// RecordSet is an ordered collection of records together with the header
// union of every file that contributed rows, in first-seen column order.
type RecordSet struct {
	// Headers contains the column headers in first-seen order.
	Headers []string

	// Records contains the ingested rows in ingestion order.
	Records []Record

	seen map[string]bool
}

// NewRecordSet returns an empty record set.
func NewRecordSet() *RecordSet {
	return &RecordSet{seen: make(map[string]bool)}
}

// MergeHeaders adds any headers not yet present, preserving first-seen order.
// Files ingested later may introduce new columns; earlier columns keep their
// position.
func (rs *RecordSet) MergeHeaders(headers []string) {
	if rs.seen == nil {
		rs.seen = make(map[string]bool)
	}
	for _, h := range headers {
		if !rs.seen[h] {
			rs.seen[h] = true
			rs.Headers = append(rs.Headers, h)
		}
	}
}

// HasColumn reports whether the given column is part of the header set.
func (rs *RecordSet) HasColumn(name string) bool {
	if rs.seen != nil {
		return rs.seen[name]
	}
	for _, h := range rs.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Append adds a row to the set, assigning the next position.
func (rs *RecordSet) Append(source string, fields map[string]string) {
	rs.Records = append(rs.Records, Record{
		Position: len(rs.Records),
		Source:   source,
		Fields:   fields,
	})
}

// Len returns the number of records in the set.
func (rs *RecordSet) Len() int {
	return len(rs.Records)
}
