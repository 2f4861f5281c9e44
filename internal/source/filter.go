// =============================================================================
// GL Toolbox - Record Source: Account/Date Scope Filter
// =============================================================================
//
// dedupacct reconciles one account over an inclusive posting-date range.
// The scope filter runs during ingestion so out-of-scope rows never enter
// the record set (and never consume positions).
//
// Account comparison is string equality on the trimmed cell value, so
// numeric-looking account codes round-trip regardless of how a file typed
// them. Dates are parsed against the configured layouts; a date cell that
// parses under no layout aborts the run, matching the all-or-nothing
// failure semantics of normalization.
//
// =============================================================================

package source

import (
	"fmt"
	"strings"
	"time"
)

// Scope selects the rows of one account within an inclusive date range.
type Scope struct {
	// AccountColumn / Account select the account.
	AccountColumn string
	Account       string

	// DateColumn / Start / End bound the posting date, inclusive.
	DateColumn string
	Start      time.Time
	End        time.Time

	// Layouts are the date layouts to try, in order.
	Layouts []string
}

// Filter returns the RowFilter implementing the scope. The date cell is
// parsed before the account is compared: a scanned file with a bad posting
// date aborts the run even when the bad row belongs to another account.
func (s Scope) Filter() RowFilter {
	return func(fields map[string]string) (bool, error) {
		posted, err := ParseDate(fields[s.DateColumn], s.Layouts)
		if err != nil {
			return false, fmt.Errorf("column %q: %w", s.DateColumn, err)
		}

		if strings.TrimSpace(fields[s.AccountColumn]) != s.Account {
			return false, nil
		}

		if posted.Before(s.Start) || posted.After(s.End) {
			return false, nil
		}
		return true, nil
	}
}

// ParseDate parses a date cell against the given layouts, first hit wins.
func ParseDate(raw string, layouts []string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", raw)
}
