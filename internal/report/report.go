// =============================================================================
// GL Toolbox - Run Reporting
// =============================================================================
//
// All human-facing status goes to stderr so stdout stays clean for piped
// CSV output. Every invocation carries a run ID so a status line can be tied
// back to a specific run when staff paste output into a ticket.
//
// The verbose summary renders the run's counters as a table.
//
// =============================================================================

package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
)

// Reporter emits status lines and the end-of-run summary for one invocation.
type Reporter struct {
	runID   string
	verbose bool
	started time.Time
	w       io.Writer

	counters []counter
}

type counter struct {
	name  string
	value string
}

// New creates a reporter for one invocation.
func New(verbose bool) *Reporter {
	return &Reporter{
		runID:   uuid.New().String(),
		verbose: verbose,
		started: time.Now(),
		w:       os.Stderr,
	}
}

// RunID returns the invocation's run identifier.
func (r *Reporter) RunID() string {
	return r.runID
}

// Statusf prints a status line to stderr.
func (r *Reporter) Statusf(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Verbosef prints a status line to stderr only in verbose mode.
func (r *Reporter) Verbosef(format string, args ...any) {
	if r.verbose {
		r.Statusf(format, args...)
	}
}

// Count records a counter for the end-of-run summary.
func (r *Reporter) Count(name string, value any) {
	r.counters = append(r.counters, counter{name: name, value: fmt.Sprintf("%v", value)})
}

// Summary renders the recorded counters as a table on stderr. It only
// renders in verbose mode; the always-on status lines already carry the
// counts staff need day to day.
func (r *Reporter) Summary(command string) {
	if !r.verbose {
		return
	}

	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Command", command})
	table.Append([]string{"Run ID", r.runID})
	for _, c := range r.counters {
		table.Append([]string{c.name, c.value})
	}
	table.Append([]string{"Elapsed", time.Since(r.started).Round(time.Millisecond).String()})
	table.Render()
}
