// =============================================================================
// GL Toolbox - Txlookup Command
// =============================================================================
//
// This file defines the 'txlookup' command: search GL export files for a
// specific amount and return ALL rows that share the same Tx-ID(s).
//
// COMMAND USAGE:
//   gltoolbox txlookup <path> [flags]
//
// TWO-PASS DESIGN:
//   Pass 1 streams only the amount and Tx-ID columns to discover which
//   Tx-IDs contain the lookup amount; pass 2 re-streams full rows for just
//   those Tx-IDs. Large exports never sit fully in memory.
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/gl-toolbox/internal/lookup"
	"github.com/ginjaninja78/gl-toolbox/internal/report"
	"github.com/ginjaninja78/gl-toolbox/internal/sink"
	"github.com/ginjaninja78/gl-toolbox/internal/source"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	lookupAmtCol  string  // column that holds the numeric amount
	lookupTxCol   string  // column that holds the transaction identifier
	lookupAmount  float64 // exact amount to find
	lookupOutFile string  // output destination; empty streams CSV to stdout
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// txlookupCmd represents the 'txlookup' command.
var txlookupCmd = &cobra.Command{
	Use:   "txlookup <path>",
	Short: "Find every row sharing a Tx-ID with a target amount",
	Long: `Scan every GL file under <path> and emit all rows whose Tx-ID equals any
Tx-ID where the amount column exactly equals the lookup value. The result is
whole transactions, not merely the rows whose own amount matched.

Example:
  gltoolbox txlookup ./gl_export \
      --amount-col Amount --tx-col TxID --lookup 1234.56 \
      --out matches.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTxlookup(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(txlookupCmd)

	txlookupCmd.Flags().StringVar(&lookupAmtCol, "amount-col", "",
		"Column that holds the numeric amount")
	txlookupCmd.Flags().StringVar(&lookupTxCol, "tx-col", "",
		"Column that holds the transaction identifier")
	txlookupCmd.Flags().Float64Var(&lookupAmount, "lookup", 0,
		"Exact amount to find (use a negative value for debits)")
	txlookupCmd.Flags().StringVar(&lookupOutFile, "out", "",
		"Write matching rows here; extension decides CSV/XLSX (stdout if omitted)")

	txlookupCmd.MarkFlagRequired("amount-col")
	txlookupCmd.MarkFlagRequired("tx-col")
	txlookupCmd.MarkFlagRequired("lookup")
}

// =============================================================================
// COMMAND EXECUTION
// =============================================================================

// runTxlookup executes one two-pass lookup. Both column flags are required,
// so the configured column defaults are not consulted here.
func runTxlookup(cmd *cobra.Command, path string) error {
	rep := report.New(verbose)

	files, err := source.Discover(path)
	if err != nil {
		return err
	}
	rep.Statusf("scanning %d GL file(s)...", len(files))

	result, err := lookup.Run(files, lookup.Options{
		AmountColumn: lookupAmtCol,
		TxColumn:     lookupTxCol,
		Target:       lookupAmount,
	}, rep.Statusf)
	if err != nil {
		return err
	}

	if err := sink.Write(result.Headers, result.Records, lookupOutFile); err != nil {
		return err
	}
	if lookupOutFile != "" {
		rep.Statusf("wrote %d row(s) to %s", len(result.Records), lookupOutFile)
	}

	rep.Count("Files", len(files))
	rep.Count("Tx-IDs found", len(result.TxIDs))
	rep.Count("Rows returned", len(result.Records))
	rep.Summary("txlookup")

	return nil
}
