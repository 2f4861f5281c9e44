// =============================================================================
// GL Toolbox - Main Entry Point
// =============================================================================
//
// GL Toolbox is a collection of small CLI helpers for the accounting team,
// used to clean general-ledger exports before further analysis.
//
// USAGE:
//   gltoolbox dedup <file>       - Remove cancelling in/out pairs from a file
//   gltoolbox dedupacct <path>   - Cancel duplicate Tx-IDs for one account
//   gltoolbox txlookup <path>    - Find all rows sharing a Tx-ID with an amount
//   gltoolbox version            - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core business logic (matching, aggregation, ingestion)
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/gl-toolbox/cmd"
)

func main() {
	cmd.Execute()
}
