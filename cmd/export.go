package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chaiyo/thaistatement/internal/consolidate"
	"github.com/chaiyo/thaistatement/internal/models"
	"github.com/chaiyo/thaistatement/internal/writer"
)

var exportCmd = &cobra.Command{
	Use:   "export <path> <output>",
	Short: "Parse, consolidate by account, and export",
	Long: `Run the full pipeline: parse every PDF under <path>, consolidate the
statements by account number, and export the result.

For --format=csv the output is a directory with one file per account;
for json and excel it is a single file. Balance continuity problems are
reported on stderr but do not fail the export.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		language := models.Language(viper.GetString("language"))

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

		accounts, issues, err := consolidate.Consolidate(statements, language)
		if err != nil {
			return err
		}
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr,
				"Warning: %s period starting %s opens at %s, previous statement closed at %s\n",
				issue.Statement.AccountNumber,
				issue.Statement.PeriodStart.Format("2006-01-02"),
				issue.ActualOpening.String(),
				issue.ExpectedOpening.String())
		}

		output := args[1]
		switch format {
		case "json":
			err = writer.WriteJSONFile(output, accounts)
		case "csv":
			w := &writer.CSVWriter{IncludeMetadata: true}
			err = w.WriteDir(output, accounts)
		case "excel":
			err = writer.WriteExcel(output, accounts)
		default:
			return fmt.Errorf("unknown format %q; use json, csv, or excel", format)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Exported %d account(s) from %d statement(s) to %s\n",
			len(accounts), len(statements), output)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "output format: json, csv, or excel")
	exportCmd.Flags().StringP("language", "l", "en", "preferred language for overlapping statements (en or th)")
	viper.BindPFlag("language", exportCmd.Flags().Lookup("language"))
	viper.BindEnv("language", "STATEMENT_LANG")
}
