// =============================================================================
// GL Toolbox - Error Taxonomy
// =============================================================================
//
// Every failure a command can report maps to one of the typed errors below.
// All of them are fatal to the invocation: nothing is retried, and no partial
// output is produced. Callers distinguish them with errors.As.
//
// =============================================================================

package ledger

import (
	"fmt"
	"strings"
)

// SchemaError reports that a required column is absent from a file's header
// row.
type SchemaError struct {
	// Column is the column that was requested.
	Column string

	// Available lists the columns that are actually present.
	Available []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %q not found; available columns: %s",
		e.Column, strings.Join(e.Available, ", "))
}

// NonNumericValueError reports that the amount column contains a value that
// cannot be coerced to a number. Normalization is all-or-nothing: a single
// bad value fails the whole run.
type NonNumericValueError struct {
	// Column is the amount column being normalized.
	Column string

	// Value is the first offending cell value.
	Value string

	// Position is the position of the offending row.
	Position int
}

func (e *NonNumericValueError) Error() string {
	return fmt.Sprintf("column %q contains non-numeric value %q (row position %d)",
		e.Column, e.Value, e.Position)
}

// NoScopeMatchError reports that no rows satisfied the account/date scope of
// an identifier-mode reconciliation. It is distinct from a clean run that
// simply found nothing to cancel.
type NoScopeMatchError struct {
	// Account is the account number the scope selected.
	Account string

	// Start and End are the inclusive date bounds of the scope, as given.
	Start string
	End   string
}

func (e *NoScopeMatchError) Error() string {
	if e.Account == "" && e.Start == "" && e.End == "" {
		return "no rows matched the account/date criteria"
	}
	return fmt.Sprintf("no rows matched account %q between %s and %s",
		e.Account, e.Start, e.End)
}

// NoMatchError reports that a lookup amount was not found in any file.
type NoMatchError struct {
	// Amount is the target amount that was searched for.
	Amount float64
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no transaction contains the amount %v", e.Amount)
}

// SourceFormatError reports that a path is neither a valid tabular file nor
// a directory.
type SourceFormatError struct {
	// Path is the offending path.
	Path string

	// Reason explains why the path was rejected.
	Reason string
}

func (e *SourceFormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is neither a directory nor a supported tabular file", e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}
