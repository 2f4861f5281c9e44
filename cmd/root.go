// =============================================================================
// GL Toolbox - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that the subcommands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (gltoolbox)
//   ├── dedupCmd     (gltoolbox dedup)
//   ├── dedupacctCmd (gltoolbox dedupacct)
//   ├── txlookupCmd  (gltoolbox txlookup)
//   └── versionCmd   (gltoolbox version)
//
// The root command owns the global flags (--config, --verbose) and the
// shared configuration loading used by every subcommand.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/gl-toolbox/internal/config"
)

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose status output when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gltoolbox",
	Short: "GL Toolbox - CLI helpers for cleaning general-ledger exports",
	Long: `GL Toolbox is a collection of small CLI helpers for the accounting team,
used to clean general-ledger exports before further analysis.

Commands:
  dedup      Remove cancelling in/out pairs from a single export file
  dedupacct  Cancel duplicate Tx-IDs for one account over a date range
  txlookup   Find every row sharing a Tx-ID with a target amount

Exports are read as CSV or XLSX; the output format follows the --out file
extension, and omitting --out streams CSV to standard output.

Example Usage:
  gltoolbox dedup ledger.csv --amount Amount --out ledger_clean.csv
  gltoolbox dedupacct ./gl_export --acct-col "Account No" --acct-num 4001 \
      --date-col PostDate --start 2024-01-01 --end 2024-03-31 --tx-col TxID
  gltoolbox txlookup ./gl_export --amount-col Amount --tx-col TxID --lookup 1234.56`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose status output",
	)
}

// loadConfig loads the toolbox configuration for a subcommand run. A missing
// default config file is fine; a missing --config file is not.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit := cmd.Root().PersistentFlags().Changed("config")
	cfg, err := config.Load(cfgFile, explicit)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
