package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chaiyo/thaistatement/internal/models"
)

func testAccount() models.Account {
	w := decimal.RequireFromString("8400.00")
	d := decimal.RequireFromString("3600.00")

	return models.Account{
		AccountNumber: "123-4-56789-0",
		AccountName:   "MR. SOMCHAI JAIDEE",
		Statements:    []models.Statement{{AccountNumber: "123-4-56789-0"}},
		AllTransactions: []models.Transaction{
			{
				Date:        time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
				Time:        "10:30",
				Description: "Transfer Withdrawal",
				Channel:     "K PLUS",
				Withdrawal:  &w,
				Balance:     decimal.RequireFromString("50000.00"),
				Reference:   "123456",
			},
			{
				Date:        time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
				Description: "Transfer Deposit",
				Deposit:     &d,
				Balance:     decimal.RequireFromString("53600.00"),
			},
		},
	}
}

func TestCSVWriter_Write(t *testing.T) {
	account := testAccount()

	var buf bytes.Buffer
	w := &CSVWriter{}
	if err := w.Write(&buf, &account); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != strings.Join(csvColumns, ",") {
		t.Errorf("header: got %q", lines[0])
	}
	// shopspring decimals render without trailing zeros.
	if !strings.Contains(lines[1], "2025-11-01,10:30,Transfer Withdrawal,K PLUS,,8400,,50000,123456") {
		t.Errorf("withdrawal row: got %q", lines[1])
	}
	if !strings.Contains(lines[2], "2025-11-03,,Transfer Deposit,,,,3600,53600,") {
		t.Errorf("deposit row: got %q", lines[2])
	}
}

func TestCSVWriter_Metadata(t *testing.T) {
	account := testAccount()

	var buf bytes.Buffer
	w := &CSVWriter{IncludeMetadata: true}
	if err := w.Write(&buf, &account); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "# Account Number,123-4-56789-0") {
		t.Errorf("missing account number metadata:\n%s", out)
	}
	if !strings.Contains(out, "# Account Name,MR. SOMCHAI JAIDEE") {
		t.Errorf("missing account name metadata:\n%s", out)
	}
	if !strings.Contains(out, "# Statements,1") {
		t.Errorf("missing statement count metadata:\n%s", out)
	}
}

func TestCSVWriter_WriteDir(t *testing.T) {
	dir := t.TempDir()
	account := testAccount()

	w := &CSVWriter{}
	if err := w.WriteDir(dir, []models.Account{account}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "1234567890.csv"))
	if err != nil {
		t.Fatalf("expected 1234567890.csv: %v", err)
	}
	if !strings.Contains(string(data), "Transfer Withdrawal") {
		t.Errorf("file content missing transactions:\n%s", data)
	}
}
