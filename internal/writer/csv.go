// Package writer serializes consolidated accounts to JSON, CSV and XLSX.
// Decimal amounts are always rendered from their exact string form; nothing
// here round-trips through float64.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chaiyo/thaistatement/internal/models"
)

var csvColumns = []string{
	"Date", "Time", "Description", "Channel", "Check Number",
	"Withdrawal", "Deposit", "Balance", "Reference",
}

// CSVWriter writes one account's merged transactions as CSV rows.
type CSVWriter struct {
	// IncludeMetadata prepends "# "-style account metadata rows.
	IncludeMetadata bool
}

// WriteDir writes one CSV file per account into dir, named after the account
// number with separators stripped (e.g. 123456789.csv).
func (w *CSVWriter) WriteDir(dir string, accounts []models.Account) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %q: %w", dir, err)
	}
	for i := range accounts {
		name := strings.ReplaceAll(accounts[i].AccountNumber, "-", "") + ".csv"
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("create %q: %w", name, err)
		}
		err = w.Write(f, &accounts[i])
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return fmt.Errorf("write %q: %w", name, err)
		}
	}
	return nil
}

// Write writes the account's transactions in CSV format.
func (w *CSVWriter) Write(out io.Writer, account *models.Account) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	if w.IncludeMetadata {
		cw.Write([]string{"# Account Number", account.AccountNumber})
		if account.AccountName != "" {
			cw.Write([]string{"# Account Name", account.AccountName})
		}
		cw.Write([]string{"# Statements", fmt.Sprintf("%d", len(account.Statements))})
	}

	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for _, txn := range account.AllTransactions {
		row := []string{
			txn.Date.Format("2006-01-02"),
			txn.Time,
			txn.Description,
			txn.Channel,
			txn.CheckNumber,
			optAmount(txn.Withdrawal),
			optAmount(txn.Deposit),
			txn.Balance.String(),
			txn.Reference,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
	}
	return cw.Error()
}

func optAmount(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
