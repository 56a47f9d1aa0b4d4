// Package parser turns extracted bank statement page text into Statement
// records. Each supported issuer has its own header and line grammar behind
// the shared Parser interface; DetectBank picks the implementation.
package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chaiyo/thaistatement/internal/models"
)

// Parser is the per-issuer statement grammar.
type Parser interface {
	// Parse consumes per-page extracted text plus a source identifier and
	// returns the assembled Statement. Unparseable lines are dropped
	// silently; missing header fields get documented defaults, so any
	// document that yields text yields a Statement.
	Parse(pages []string, source string) (*models.Statement, error)
	// BankName returns the human-readable bank name.
	BankName() string
}

// New returns the parser for the given bank type.
func New(bank models.BankType) (Parser, error) {
	switch bank {
	case models.BankKBank:
		return &KBankParser{}, nil
	case models.BankBBL:
		return &BBLParser{}, nil
	case models.BankSCB:
		return &SCBParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported bank type: %q", bank)
	}
}

// ParsePages runs bank detection over the combined page text and dispatches
// to the matching issuer parser.
func ParsePages(pages []string, source string) (*models.Statement, error) {
	full := strings.Join(pages, "\n")
	p, err := New(DetectBank(full))
	if err != nil {
		return nil, err
	}
	return p.Parse(pages, source)
}

// header holds raw per-issuer extraction results before defaults apply.
// Zero values mean "not found".
type header struct {
	AccountNumber string
	AccountName   string
	PeriodStart   time.Time
	PeriodEnd     time.Time
	Opening       *decimal.Decimal
	Closing       *decimal.Decimal
	Branch        string
	Currency      string
}

// assemble applies the best-effort defaults (UNKNOWN account, today's date,
// zero balances, THB) and builds the immutable Statement. Extraction misses
// never fail a parse.
func assemble(h header, txns []models.Transaction, bank models.BankType, lang models.Language, source string) *models.Statement {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	stmt := &models.Statement{
		AccountNumber:  h.AccountNumber,
		AccountName:    h.AccountName,
		PeriodStart:    h.PeriodStart,
		PeriodEnd:      h.PeriodEnd,
		OpeningBalance: decimal.Zero,
		ClosingBalance: decimal.Zero,
		Transactions:   txns,
		SourcePDF:      source,
		Language:       lang,
		Bank:           bank,
		Branch:         h.Branch,
		Currency:       h.Currency,
	}

	if stmt.AccountNumber == "" {
		stmt.AccountNumber = "UNKNOWN"
	}
	if stmt.PeriodStart.IsZero() {
		stmt.PeriodStart = today
	}
	if stmt.PeriodEnd.IsZero() {
		stmt.PeriodEnd = today
	}
	if h.Opening != nil {
		stmt.OpeningBalance = *h.Opening
	}
	if h.Closing != nil {
		stmt.ClosingBalance = *h.Closing
	}
	if stmt.Currency == "" {
		stmt.Currency = "THB"
	}
	return stmt
}

// parseAllLines feeds every line of every page through the issuer line
// grammar, dropping rejected lines. Partial-line noise is expected.
func parseAllLines(pages []string, parseLine func(string) *models.Transaction) []models.Transaction {
	var txns []models.Transaction
	for _, page := range pages {
		for _, line := range strings.Split(page, "\n") {
			if txn := parseLine(strings.TrimSpace(line)); txn != nil {
				txns = append(txns, *txn)
			}
		}
	}
	return txns
}
