package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankType identifies the issuing bank of a statement.
type BankType string

const (
	BankKBank BankType = "kbank"
	BankBBL   BankType = "bbl"
	BankSCB   BankType = "scb"
)

// Language of a statement document.
type Language string

const (
	LangEnglish Language = "en"
	LangThai    Language = "th"
	LangUnknown Language = "unknown"
)

// Transaction is a single statement line. Amounts are exact decimals; at most
// one of Withdrawal/Deposit is set, and Balance is always the running balance
// after the transaction. Two transactions with the same date, time, description
// and amounts describe the same real-world event.
type Transaction struct {
	Date        time.Time        `json:"date"`
	Time        string           `json:"time,omitempty"` // "HH:MM", empty when the statement has no time column
	Description string           `json:"description"`
	Channel     string           `json:"channel,omitempty"` // K PLUS, EDC, ATM, mPhone, Gtway, BR0369, ...
	Withdrawal  *decimal.Decimal `json:"withdrawal,omitempty"`
	Deposit     *decimal.Decimal `json:"deposit,omitempty"`
	Balance     decimal.Decimal  `json:"balance"`
	Reference   string           `json:"reference,omitempty"`
	CheckNumber string           `json:"checkNumber,omitempty"` // BBL Chq.No. field
}

// Statement is one parsed bank PDF document. It is created once per document
// and not mutated afterwards; transactions keep their input order.
type Statement struct {
	AccountNumber  string          `json:"accountNumber"`
	AccountName    string          `json:"accountName,omitempty"`
	PeriodStart    time.Time       `json:"periodStart"`
	PeriodEnd      time.Time       `json:"periodEnd"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Transactions   []Transaction   `json:"transactions"`
	SourcePDF      string          `json:"sourcePdf"`
	Language       Language        `json:"language"`
	Bank           BankType        `json:"bank"`
	Branch         string          `json:"branch,omitempty"` // e.g. "0369 KUMPHAWAPI BRANCH"
	Currency       string          `json:"currency"`
}

// PeriodDays returns the inclusive length of the statement period in days.
func (s *Statement) PeriodDays() int {
	return int(s.PeriodEnd.Sub(s.PeriodStart).Hours()/24) + 1
}

// Account is the consolidated view of one account number across statements.
// It is recomputed from scratch on every consolidation run and holds only the
// selected (non-redundant) statements plus the merged transaction history.
type Account struct {
	AccountNumber   string        `json:"accountNumber"`
	AccountName     string        `json:"accountName,omitempty"`
	Statements      []Statement   `json:"statements"`
	AllTransactions []Transaction `json:"allTransactions"`
}

// BalanceIssue records a closing/opening balance mismatch between two
// consecutive statements. It is a diagnostic, not an error.
type BalanceIssue struct {
	Statement       Statement       `json:"statement"`
	ExpectedOpening decimal.Decimal `json:"expectedOpening"`
	ActualOpening   decimal.Decimal `json:"actualOpening"`
	PrevStatement   *Statement      `json:"prevStatement,omitempty"`
}
