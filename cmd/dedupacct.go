// =============================================================================
// GL Toolbox - Dedupacct Command
// =============================================================================
//
// This file defines the 'dedupacct' command: cancel duplicate Tx-IDs for one
// account over a date range.
//
// COMMAND USAGE:
//   gltoolbox dedupacct <path> [flags]
//
// PIPELINE:
//   1. Load GL export files (directory or single file, CSV or XLSX)
//   2. Filter to the requested account and inclusive date range
//   3. Group by the Tx-ID column, summing the amount per Tx-ID
//   4. Find Tx-ID pairs whose sums have equal magnitude and opposite sign
//   5. Drop ALL rows whose Tx-ID is in any cancelling pair
//
// An empty account/date scope exits with an error so "nothing in scope" is
// never mistaken for "everything reconciled".
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/gl-toolbox/internal/reconcile"
	"github.com/ginjaninja78/gl-toolbox/internal/report"
	"github.com/ginjaninja78/gl-toolbox/internal/sink"
	"github.com/ginjaninja78/gl-toolbox/internal/source"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	acctCol     string // column holding the account number
	acctNum     string // account number to deduplicate
	dateCol     string // column with the posting date
	startDate   string // inclusive start date
	endDate     string // inclusive end date
	txCol       string // column with the transaction identifier
	acctAmtCol  string // amount column; empty means the configured default
	acctOutFile string // output destination; empty streams CSV to stdout
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// dedupacctCmd represents the 'dedupacct' command.
var dedupacctCmd = &cobra.Command{
	Use:   "dedupacct <path>",
	Short: "Cancel duplicate Tx-IDs for one account over a date range",
	Long: `Remove Tx-IDs that cancel each other (equal summed magnitude, opposite
sign) for one account between two inclusive dates.

Amounts are summed per Tx-ID before matching, so a Tx-ID's rows cancel as a
whole: when two Tx-IDs match, every row of both is removed, even rows whose
own amount was not part of the cancelling total.

Example:
  gltoolbox dedupacct ./gl_export \
      --acct-col "Account No" --acct-num 4001 \
      --date-col PostDate --start 2024-01-01 --end 2024-03-31 \
      --tx-col TxID --amount-col Amount \
      --out 4001_clean.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDedupacct(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(dedupacctCmd)

	dedupacctCmd.Flags().StringVar(&acctCol, "acct-col", "", "Column holding the account number")
	dedupacctCmd.Flags().StringVar(&acctNum, "acct-num", "", "Account number to deduplicate")
	dedupacctCmd.Flags().StringVar(&dateCol, "date-col", "", "Column with the posting date")
	dedupacctCmd.Flags().StringVar(&startDate, "start", "", "Inclusive start date (e.g. 2024-01-01)")
	dedupacctCmd.Flags().StringVar(&endDate, "end", "", "Inclusive end date (e.g. 2024-03-31)")
	dedupacctCmd.Flags().StringVar(&txCol, "tx-col", "", "Column with the transaction identifier")
	dedupacctCmd.Flags().StringVar(&acctAmtCol, "amount-col", "",
		"Numeric column with debits (-) and credits (+) (default from config, \"Amount\")")
	dedupacctCmd.Flags().StringVar(&acctOutFile, "out", "",
		"Write cleaned data here; extension decides CSV/XLSX (stdout if omitted)")

	dedupacctCmd.MarkFlagRequired("acct-col")
	dedupacctCmd.MarkFlagRequired("acct-num")
	dedupacctCmd.MarkFlagRequired("date-col")
	dedupacctCmd.MarkFlagRequired("start")
	dedupacctCmd.MarkFlagRequired("end")
	dedupacctCmd.MarkFlagRequired("tx-col")
}

// =============================================================================
// COMMAND EXECUTION
// =============================================================================

// runDedupacct executes one identifier-mode reconciliation.
func runDedupacct(cmd *cobra.Command, path string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rep := report.New(verbose)

	amountCol := acctAmtCol
	if amountCol == "" {
		amountCol = cfg.Columns.Amount
	}

	start, err := source.ParseDate(startDate, cfg.Dates.Layouts)
	if err != nil {
		return fmt.Errorf("--start: %w", err)
	}
	end, err := source.ParseDate(endDate, cfg.Dates.Layouts)
	if err != nil {
		return fmt.Errorf("--end: %w", err)
	}

	files, err := source.Discover(path)
	if err != nil {
		return err
	}
	rep.Statusf("loading %d GL file(s)...", len(files))

	scope := source.Scope{
		AccountColumn: acctCol,
		Account:       acctNum,
		DateColumn:    dateCol,
		Start:         start,
		End:           end,
		Layouts:       cfg.Dates.Layouts,
	}
	rs, err := source.ReadAll(files, nil, scope.Filter())
	if err != nil {
		return err
	}
	rep.Verbosef("%d row(s) in scope for account %s", rs.Len(), acctNum)

	result, err := reconcile.Identifiers(rs, txCol, amountCol, reconcile.Scope{
		Account: acctNum,
		Start:   startDate,
		End:     endDate,
	})
	if err != nil {
		return err
	}

	if len(result.RemovedIDs) == 0 {
		rep.Statusf("no cancelling Tx-IDs found; output is unchanged")
	} else {
		rep.Statusf("removing %d duplicate Tx-ID(s)", len(result.RemovedIDs))
	}

	if err := sink.Write(result.Headers, result.Survivors, acctOutFile); err != nil {
		return err
	}
	if acctOutFile != "" {
		rep.Statusf("wrote %d row(s) to %s", len(result.Survivors), acctOutFile)
	}

	rep.Count("Files", len(files))
	rep.Count("Rows in scope", rs.Len())
	rep.Count("Tx-IDs removed", len(result.RemovedIDs))
	rep.Count("Rows removed", result.RowsRemoved)
	rep.Count("Survivors", len(result.Survivors))
	rep.Summary("dedupacct")

	return nil
}
