// =============================================================================
// GL Toolbox - Dedup Command
// =============================================================================
//
// This file defines the 'dedup' command: remove cancelling in/out pairs from
// a single GL export file.
//
// COMMAND USAGE:
//   gltoolbox dedup <file> [flags]
//
// FLAGS:
//   --amount : Numeric column with debits (-) and credits (+)
//   --out    : Write the cleaned file here (stdout if omitted)
//
// PIPELINE:
//   1. Read every row of the file (CSV or XLSX)
//   2. Normalize the amount column to signed values
//   3. Run the cancelling-pair scan over individual rows
//   4. Write the surviving rows, original order preserved
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/gl-toolbox/internal/matcher"
	"github.com/ginjaninja78/gl-toolbox/internal/reconcile"
	"github.com/ginjaninja78/gl-toolbox/internal/report"
	"github.com/ginjaninja78/gl-toolbox/internal/sink"
	"github.com/ginjaninja78/gl-toolbox/internal/source"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dedupAmountCol is the amount column; empty means the configured default.
var dedupAmountCol string

// dedupOutFile is the output destination; empty streams CSV to stdout.
var dedupOutFile string

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// dedupCmd represents the 'dedup' command.
var dedupCmd = &cobra.Command{
	Use:   "dedup <file>",
	Short: "Remove cancelling in/out pairs from a GL export file",
	Long: `Remove rows whose amounts cancel each other (equal magnitude, opposite
sign) from a single export file. Matching is greedy and order-dependent:
rows are scanned top to bottom and each row cancels against the most recent
unmatched row of the opposite sign with the same magnitude.

The cleaned file keeps every surviving row in its original order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDedup(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(dedupCmd)

	dedupCmd.Flags().StringVar(
		&dedupAmountCol,
		"amount",
		"",
		"Numeric column with debits (-) and credits (+) (default from config, \"Amount\")",
	)

	dedupCmd.Flags().StringVar(
		&dedupOutFile,
		"out",
		"",
		"Write the cleaned file here; extension decides CSV/XLSX (stdout if omitted)",
	)
}

// =============================================================================
// COMMAND EXECUTION
// =============================================================================

// runDedup executes one row-mode reconciliation over a single file.
func runDedup(cmd *cobra.Command, path string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rep := report.New(verbose)

	amountCol := dedupAmountCol
	if amountCol == "" {
		amountCol = cfg.Columns.Amount
	}

	file, err := source.DiscoverFile(path)
	if err != nil {
		return err
	}

	rs, err := source.ReadAll([]string{file}, nil, nil)
	if err != nil {
		return err
	}
	rep.Verbosef("read %d row(s) from %s", rs.Len(), file)

	progress := matchProgress(rep, cfg.Progress.Interval)
	result, err := reconcile.Rows(rs, amountCol, progress)
	if err != nil {
		return err
	}

	if err := sink.Write(result.Headers, result.Survivors, dedupOutFile); err != nil {
		return err
	}

	if len(result.Pairs) == 0 {
		rep.Statusf("no cancelling pairs found; file is unchanged")
	} else {
		rep.Statusf("removed %d row(s) in %d cancelling pair(s)", result.RowsRemoved, len(result.Pairs))
	}
	if dedupOutFile != "" {
		rep.Statusf("wrote %d row(s) to %s", len(result.Survivors), dedupOutFile)
	}

	rep.Count("Rows read", rs.Len())
	rep.Count("Pairs matched", len(result.Pairs))
	rep.Count("Rows removed", result.RowsRemoved)
	rep.Count("Survivors", len(result.Survivors))
	rep.Summary("dedup")

	return nil
}

// matchProgress returns a progress observer that reports every interval
// rows on long scans. Progress has no effect on the matching outcome.
func matchProgress(rep *report.Reporter, interval int) matcher.ProgressFunc {
	return func(done, total int) {
		if done == total || done%interval == 0 {
			rep.Verbosef("matching: %d/%d row(s) scanned", done, total)
		}
	}
}
