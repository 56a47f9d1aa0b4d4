package writer

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/chaiyo/thaistatement/internal/models"
)

func TestWriteExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.xlsx")
	account := testAccount()

	if err := WriteExcel(path, []models.Account{account}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "1234567890" {
		t.Fatalf("sheets: got %v, want [1234567890]", sheets)
	}

	got, err := f.GetCellValue("1234567890", "A1")
	if err != nil || got != "Date" {
		t.Errorf("A1: got %q (%v), want %q", got, err, "Date")
	}
	got, _ = f.GetCellValue("1234567890", "C2")
	if got != "Transfer Withdrawal" {
		t.Errorf("C2: got %q, want %q", got, "Transfer Withdrawal")
	}
	got, _ = f.GetCellValue("1234567890", "E2")
	if got != "8400" {
		t.Errorf("E2: got %q, want %q", got, "8400")
	}
	got, _ = f.GetCellValue("1234567890", "G3")
	if got != "53600" {
		t.Errorf("G3: got %q, want %q", got, "53600")
	}
}

func TestSheetName(t *testing.T) {
	if got := sheetName("123-4-56789-0"); got != "1234567890" {
		t.Errorf("got %q, want %q", got, "1234567890")
	}
	long := sheetName("1234567890123456789012345678901234567890")
	if len(long) != 31 {
		t.Errorf("long name: got %d chars, want 31", len(long))
	}
}
