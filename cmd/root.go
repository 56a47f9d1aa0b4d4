// Package cmd wires the statement pipelines into a CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "thaistatement",
	Short:         "Parse and consolidate Thai bank PDF statements (KBank, BBL, SCB)",
	Long: `thaistatement converts Thai bank statement PDFs into a normalized
transaction ledger and reconciles statements belonging to the same
account into one deduplicated, balance-validated history.

The issuing bank (KBank, Bangkok Bank, SCB) and statement language
(Thai or English) are detected automatically.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("password", "p", "", "password for encrypted statement PDFs")
	viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))
	viper.BindEnv("password", "PDF_PASS")

	rootCmd.AddCommand(parseCmd, exportCmd, serveCmd)
}
