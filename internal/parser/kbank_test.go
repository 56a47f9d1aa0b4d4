package parser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chaiyo/thaistatement/internal/models"
)

func TestKBankParser_ParseLine(t *testing.T) {
	p := &KBankParser{}

	txn := p.ParseLine("01-11-25 10:30 Transfer Withdrawal 8,400.00 50,000.00 K PLUS REF123456")
	if txn == nil {
		t.Fatal("expected a transaction, got nil")
	}

	wantDate := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	if !txn.Date.Equal(wantDate) {
		t.Errorf("Date: got %v, want %v", txn.Date, wantDate)
	}
	if txn.Time != "10:30" {
		t.Errorf("Time: got %q, want %q", txn.Time, "10:30")
	}
	if txn.Withdrawal == nil || !txn.Withdrawal.Equal(decimal.RequireFromString("8400.00")) {
		t.Errorf("Withdrawal: got %v, want 8400.00", txn.Withdrawal)
	}
	if txn.Deposit != nil {
		t.Errorf("Deposit: got %v, want nil", txn.Deposit)
	}
	if !txn.Balance.Equal(decimal.RequireFromString("50000.00")) {
		t.Errorf("Balance: got %s, want 50000.00", txn.Balance)
	}
	if txn.Channel != "K PLUS" {
		t.Errorf("Channel: got %q, want %q", txn.Channel, "K PLUS")
	}
	if txn.Description != "Transfer Withdrawal" {
		t.Errorf("Description: got %q, want %q", txn.Description, "Transfer Withdrawal")
	}
	if txn.Reference != "123456" {
		t.Errorf("Reference: got %q, want %q", txn.Reference, "123456")
	}
}

func TestKBankParser_ParseLine_Deposit(t *testing.T) {
	p := &KBankParser{}

	txn := p.ParseLine("05-11-25 14:02 Transfer Deposit 12,000.00 62,000.00 K PLUS")
	if txn == nil {
		t.Fatal("expected a transaction, got nil")
	}
	if txn.Deposit == nil || !txn.Deposit.Equal(decimal.RequireFromString("12000.00")) {
		t.Errorf("Deposit: got %v, want 12000.00", txn.Deposit)
	}
	if txn.Withdrawal != nil {
		t.Errorf("Withdrawal: got %v, want nil", txn.Withdrawal)
	}
}

func TestKBankParser_ParseLine_DepositKeywordWins(t *testing.T) {
	p := &KBankParser{}

	// "Fee" is a withdrawal keyword, but "Refund" marks a credit and deposit
	// keywords take precedence.
	txn := p.ParseLine("07-11-25 09:15 Fee Refund 150.00 62,150.00")
	if txn == nil {
		t.Fatal("expected a transaction, got nil")
	}
	if txn.Deposit == nil || !txn.Deposit.Equal(decimal.RequireFromString("150.00")) {
		t.Errorf("Deposit: got %v, want 150.00", txn.Deposit)
	}
	if txn.Withdrawal != nil {
		t.Errorf("Withdrawal: got %v, want nil", txn.Withdrawal)
	}
}

func TestKBankParser_ParseLine_AmbiguousDefaultsToWithdrawal(t *testing.T) {
	p := &KBankParser{}

	txn := p.ParseLine("08-11-25 11:00 Mystery Item 500.00 61,650.00")
	if txn == nil {
		t.Fatal("expected a transaction, got nil")
	}
	if txn.Withdrawal == nil || !txn.Withdrawal.Equal(decimal.RequireFromString("500.00")) {
		t.Errorf("Withdrawal: got %v, want 500.00 (ambiguous fallback)", txn.Withdrawal)
	}
	if txn.Deposit != nil {
		t.Errorf("Deposit: got %v, want nil", txn.Deposit)
	}
}

func TestKBankParser_ParseLine_Rejects(t *testing.T) {
	p := &KBankParser{}

	tests := []struct {
		name string
		line string
	}{
		{"no leading date", "Transfer Withdrawal 8,400.00 50,000.00"},
		{"beginning balance row", "01-11-25 Beginning Balance 58,400.00"},
		{"thai beginning balance row", "01-11-25 ยอดยกมา 58,400.00"},
		{"ending balance row", "30-11-25 Ending Balance 50,000.00"},
		{"no amounts", "01-11-25 10:30 Transfer Withdrawal pending"},
		{"impossible date", "31-02-25 10:30 Transfer Withdrawal 8,400.00 50,000.00"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if txn := p.ParseLine(tt.line); txn != nil {
				t.Errorf("expected nil, got %+v", txn)
			}
		})
	}
}

func TestKBankParser_ParseLine_SingleAmountIsBalance(t *testing.T) {
	p := &KBankParser{}

	txn := p.ParseLine("09-11-25 Item Adjustment 61,650.00")
	if txn == nil {
		t.Fatal("expected a transaction, got nil")
	}
	if !txn.Balance.Equal(decimal.RequireFromString("61650.00")) {
		t.Errorf("Balance: got %s, want 61650.00", txn.Balance)
	}
	if txn.Withdrawal != nil || txn.Deposit != nil {
		t.Error("single-amount line should carry only a balance")
	}
}

func TestKBankParser_Parse(t *testing.T) {
	p := &KBankParser{}

	pages := []string{
		`Account Statement
Period 01/11/2025 - 30/11/2025
AccountMR. SOMCHAI JAIDEE Reference
123-4-56789-0
Beginning Balance 58,400.00
01-11-25 10:30 Transfer Withdrawal 8,400.00 50,000.00 K PLUS REF123456
05-11-25 14:02 Transfer Deposit 12,000.00 62,000.00 K PLUS
Ending Balance 62,000.00`,
	}

	stmt, err := p.Parse(pages, "nov.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stmt.AccountNumber != "123-4-56789-0" {
		t.Errorf("AccountNumber: got %q, want %q", stmt.AccountNumber, "123-4-56789-0")
	}
	if stmt.AccountName != "MR. SOMCHAI JAIDEE" {
		t.Errorf("AccountName: got %q, want %q", stmt.AccountName, "MR. SOMCHAI JAIDEE")
	}
	if !stmt.PeriodStart.Equal(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("PeriodStart: got %v", stmt.PeriodStart)
	}
	if !stmt.PeriodEnd.Equal(time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("PeriodEnd: got %v", stmt.PeriodEnd)
	}
	if !stmt.OpeningBalance.Equal(decimal.RequireFromString("58400.00")) {
		t.Errorf("OpeningBalance: got %s, want 58400.00", stmt.OpeningBalance)
	}
	if !stmt.ClosingBalance.Equal(decimal.RequireFromString("62000.00")) {
		t.Errorf("ClosingBalance: got %s, want 62000.00", stmt.ClosingBalance)
	}
	if len(stmt.Transactions) != 2 {
		t.Fatalf("Transactions: got %d, want 2", len(stmt.Transactions))
	}
	if stmt.Bank != models.BankKBank {
		t.Errorf("Bank: got %q, want %q", stmt.Bank, models.BankKBank)
	}
	if stmt.Language != models.LangEnglish {
		t.Errorf("Language: got %q, want %q", stmt.Language, models.LangEnglish)
	}
	if stmt.Currency != "THB" {
		t.Errorf("Currency: got %q, want %q", stmt.Currency, "THB")
	}
	if stmt.SourcePDF != "nov.pdf" {
		t.Errorf("SourcePDF: got %q, want %q", stmt.SourcePDF, "nov.pdf")
	}
}

func TestKBankParser_ThaiHonorificNormalized(t *testing.T) {
	p := &KBankParser{}

	h := p.extractHeader("ชื่อบัญชี นาย สมชาย ใจดี เลขที่บัญชี 123-4-56789-0")
	if h.AccountName != "MR. สมชาย ใจดี" {
		t.Errorf("AccountName: got %q, want %q", h.AccountName, "MR. สมชาย ใจดี")
	}
}
