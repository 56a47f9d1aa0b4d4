package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var parseCmd = &cobra.Command{
	Use:   "parse <path>",
	Short: "Parse statement PDF(s) and print Statement JSON to stdout",
	Long: `Parse a statement PDF, or every PDF in a directory, and print the
parsed Statement records as JSON. Bank and language are auto-detected.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		statements, skipped, err := parsePath(args[0], viper.GetString("password"))
		if err != nil {
			return err
		}
		if len(statements) == 0 {
			return fmt.Errorf("no statements parsed from %s", args[0])
		}
		if skipped > 0 {
			fmt.Fprintf(os.Stderr, "Warning: skipped %d unparseable file(s)\n", skipped)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if len(statements) == 1 {
			return enc.Encode(statements[0])
		}
		return enc.Encode(statements)
	},
}
