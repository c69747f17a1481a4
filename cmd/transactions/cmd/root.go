package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Interpreter of CSV transaction streams",
	Long: `Transactions applies a CSV stream of deposits, withdrawals, disputes,
resolves and chargebacks to per-client accounts and reports the final
balances.

It provides tools for:
  - Processing a transaction file into an account report
  - Skipping malformed records while keeping the rest of the stream intact
  - Managing run configuration files

The report is written as CSV (client, available, held, total, locked) with
the total derived from available + held at write time.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
