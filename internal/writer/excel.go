package writer

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/chaiyo/thaistatement/internal/models"
)

var excelColumns = []string{
	"Date", "Time", "Description", "Channel",
	"Withdrawal", "Deposit", "Balance", "Reference",
}

// WriteExcel writes one worksheet per account to an XLSX workbook at path.
// Sheet names are the account number with separators stripped, truncated to
// Excel's 31-character limit. Amounts are written as strings to keep their
// exact decimal values.
func WriteExcel(path string, accounts []models.Account) error {
	f := excelize.NewFile()
	defer f.Close()

	for i := range accounts {
		account := &accounts[i]
		sheet := sheetName(account.AccountNumber)

		if i == 0 {
			// Rename the default sheet instead of leaving it empty.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %q: %w", sheet, err)
		}

		if err := writeSheet(f, sheet, account); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %q: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, account *models.Account) error {
	header := make([]interface{}, len(excelColumns))
	for i, c := range excelColumns {
		header[i] = c
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, txn := range account.AllTransactions {
		row := []interface{}{
			txn.Date.Format("2006-01-02"),
			txn.Time,
			txn.Description,
			txn.Channel,
			optAmount(txn.Withdrawal),
			optAmount(txn.Deposit),
			txn.Balance.String(),
			txn.Reference,
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d of %q: %w", row, sheet, err)
	}
	return nil
}

func sheetName(accountNumber string) string {
	name := strings.ReplaceAll(accountNumber, "-", "")
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
