package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chaiyo/thaistatement/internal/models"
)

// SCBParser handles Siam Commercial Bank statement PDFs.
//
// SCB exports are column-aligned, so a single anchored pattern replaces the
// free-text heuristics the other issuers need:
//
//	DD/MM/YY HH:MM CODE CHANNEL AMOUNT BALANCE DESCRIPTION
//
// CODE is X1 for credits (deposits) and X2 for debits (withdrawals).
// Example: "01/04/24 19:20 X2 ENET 3,470.00 42,072.00 PromptPay x9119"
type SCBParser struct{}

func (p *SCBParser) BankName() string {
	return "Siam Commercial Bank"
}

var (
	scbLinePattern = regexp.MustCompile(
		`^(\d{2}/\d{2}/\d{2})\s+` + // date
			`(\d{2}:\d{2})\s+` + // time
			`(X[12])\s+` + // debit/credit code
			`(\w+)\s+` + // channel
			`([\d,]+\.\d{2})\s+` + // amount
			`([\d,]+\.\d{2})\s+` + // balance
			`(.+)$`) // description

	scbBranchPattern  = regexp.MustCompile(`(?m)^([A-Z][A-Z ]+BRANCH)$`)
	scbAccountPattern = regexp.MustCompile(`(\d{3}-\d{6}-\d)`)
	scbPeriodPattern  = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s*-\s*(\d{2}/\d{2}/\d{4})`)
	scbNamePattern    = regexp.MustCompile(`((?:นาย|นาง|นางสาว)\s+[ก-๙\s]+?)\s+\d{3}-\d{6}-\d`)

	scbBroughtForward = regexp.MustCompile(`BALANCE BROUGHT FORWARD\)?\s*([\d,]+\.\d{2})`)
	scbClosingPattern = regexp.MustCompile(`(?m)^\d{2}/\d{2}/\d{2}\s+\d{2}:\d{2}\s+X[12]\s+\w+\s+[\d,]+\.\d{2}\s+([\d,]+\.\d{2})`)
)

func (p *SCBParser) Parse(pages []string, source string) (*models.Statement, error) {
	full := strings.Join(pages, "\n")
	headerText := ""
	if len(pages) > 0 {
		headerText = pages[0]
	}

	h := p.extractHeader(headerText)
	h.Opening, h.Closing = p.extractBalances(full)

	txns := parseAllLines(pages, p.ParseLine)
	return assemble(h, txns, models.BankSCB, DetectLanguage(full), source), nil
}

func (p *SCBParser) extractHeader(text string) header {
	h := header{Currency: "THB"}

	// "UDON THANI BRANCH" style line; the bank name header also ends in
	// BRANCH-like capitals, so exclude it.
	if m := scbBranchPattern.FindStringSubmatch(text); m != nil && !strings.Contains(m[1], "COMMERCIAL") {
		h.Branch = strings.TrimSpace(m[1])
	}

	if m := scbAccountPattern.FindStringSubmatch(text); m != nil {
		h.AccountNumber = m[1]
	}

	if m := scbPeriodPattern.FindStringSubmatch(text); m != nil {
		if d, ok := parseFullDate(m[1]); ok {
			h.PeriodStart = d
		}
		if d, ok := parseFullDate(m[2]); ok {
			h.PeriodEnd = d
		}
	}

	if m := scbNamePattern.FindStringSubmatch(text); m != nil {
		h.AccountName = strings.TrimSpace(m[1])
	}
	return h
}

// extractBalances reads the BALANCE BROUGHT FORWARD row for the opening
// balance and takes the balance column of the last transaction line as the
// closing balance.
func (p *SCBParser) extractBalances(full string) (opening, closing *decimal.Decimal) {
	if m := scbBroughtForward.FindStringSubmatch(full); m != nil {
		opening = amountPtr(m[1])
	}
	if ms := scbClosingPattern.FindAllStringSubmatch(full, -1); len(ms) > 0 {
		closing = amountPtr(ms[len(ms)-1][1])
	}
	return opening, closing
}

// ParseLine matches the fixed SCB column grammar, or returns nil.
func (p *SCBParser) ParseLine(line string) *models.Transaction {
	m := scbLinePattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	date, ok := parseShortDate(m[1], "/")
	if !ok {
		return nil
	}

	balance, ok := parseAmount(m[6])
	if !ok {
		return nil
	}

	txn := models.Transaction{
		Date:        date,
		Time:        parseClock(m[2]),
		Channel:     m[4],
		Balance:     balance,
		Description: strings.TrimSpace(m[7]),
	}

	if m[3] == "X1" {
		txn.Deposit = amountPtr(m[5])
	} else {
		txn.Withdrawal = amountPtr(m[5])
	}
	return &txn
}
