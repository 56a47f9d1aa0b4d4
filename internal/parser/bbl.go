package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chaiyo/thaistatement/internal/keywords"
	"github.com/chaiyo/thaistatement/internal/models"
)

// BBLParser handles Bangkok Bank statement PDFs.
//
// BBL transaction lines carry no time and may leave amount columns blank:
//
//	DD/MM/YY DESCRIPTION [CHQ.NO] [WITHDRAWAL] [DEPOSIT] BALANCE VIA
//
// Example: "01/11/25 TRF TO OTH BK 48,755.00 782,344.60 mPhone"
// Example: "04/11/25 CASH DEP NBK 10,000.00 688,797.52 BR0369 KUMPHAWAPI"
//
// The opening balance comes from the B/F (Brought Forward) row; the closing
// balance is the running balance of the last transaction line.
type BBLParser struct{}

func (p *BBLParser) BankName() string {
	return "Bangkok Bank"
}

var (
	bblDateGate = regexp.MustCompile(`^(\d{2}/\d{2}/\d{2})\s+`)
	bblDescTok  = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}\s+(.+?)\d[\d,]*\.\d{2}`)

	bblBranchEN = regexp.MustCompile(`(\d{4}\s+[A-Z\s]+BRANCH)`)
	bblBranchTH = regexp.MustCompile(`(\d{4}[ \t]+สาขา[ก-๙ \t]+)`)

	bblAccountPattern  = regexp.MustCompile(`(\d{3}-\d-\d{5}-\d)`)
	bblCurrencyPattern = regexp.MustCompile(`(?:Currency|สกุลเงิน/Currency)\s+([A-Z]{3})`)
	bblPeriodPattern   = regexp.MustCompile(`(?:Statement Period|รอบรายการบัญชี\s*/\s*Statement Period)\s+(\d{2}/\d{2}/\d{4})\s*-\s*(\d{2}/\d{2}/\d{4})`)
	bblNameEN          = regexp.MustCompile(`Name\s+((?:MR|MRS|MS)\s+[A-Z\s]+?)(?:\s+เลขที่|Account|\n)`)
	bblNameTH          = regexp.MustCompile(`ชื่อ/Name\s+((?:นาย|นาง|นางสาว)\s+[ก-๙\s]+?)\s+เลขที่`)

	bblBroughtForward = regexp.MustCompile(`B/F\s+([\d,]+\.\d{2})`)

	bblBranchChannelNamed = regexp.MustCompile(`(BR\d{4})\s+([A-Z]+)`)
	bblBranchChannel      = regexp.MustCompile(`\b(BR\d{4})\b`)
)

func (p *BBLParser) Parse(pages []string, source string) (*models.Statement, error) {
	full := strings.Join(pages, "\n")
	headerText := ""
	if len(pages) > 0 {
		headerText = pages[0]
	}

	h := p.extractHeader(headerText)
	h.Opening, h.Closing = p.extractBalances(full)

	txns := parseAllLines(pages, p.ParseLine)
	return assemble(h, txns, models.BankBBL, DetectLanguage(full), source), nil
}

func (p *BBLParser) extractHeader(text string) header {
	var h header

	if m := bblBranchEN.FindStringSubmatch(text); m != nil {
		h.Branch = strings.TrimSpace(m[1])
	} else if m := bblBranchTH.FindStringSubmatch(text); m != nil {
		h.Branch = strings.TrimSpace(m[1])
	}

	if m := bblAccountPattern.FindStringSubmatch(text); m != nil {
		h.AccountNumber = m[1]
	}

	h.Currency = "THB"
	if m := bblCurrencyPattern.FindStringSubmatch(text); m != nil {
		h.Currency = m[1]
	}

	if m := bblPeriodPattern.FindStringSubmatch(text); m != nil {
		if d, ok := parseFullDate(m[1]); ok {
			h.PeriodStart = d
		}
		if d, ok := parseFullDate(m[2]); ok {
			h.PeriodEnd = d
		}
	}

	if m := bblNameEN.FindStringSubmatch(text); m != nil {
		h.AccountName = strings.TrimSpace(m[1])
	} else if m := bblNameTH.FindStringSubmatch(text); m != nil {
		h.AccountName = strings.TrimSpace(m[1])
	}
	return h
}

// extractBalances pulls the B/F amount as the opening balance and walks every
// transaction line to find the final running balance, which BBL does not
// print as a labelled total.
func (p *BBLParser) extractBalances(full string) (opening, closing *decimal.Decimal) {
	if m := bblBroughtForward.FindStringSubmatch(full); m != nil {
		opening = amountPtr(m[1])
	}

	for _, line := range strings.Split(full, "\n") {
		if !bblDateGate.MatchString(line) || strings.Contains(line, "B/F") {
			continue
		}
		amounts := amountPattern.FindAllString(line, -1)
		if len(amounts) > 0 {
			closing = amountPtr(amounts[len(amounts)-1])
		}
	}
	return opening, closing
}

// ParseLine converts one BBL statement line into a Transaction, or nil.
func (p *BBLParser) ParseLine(line string) *models.Transaction {
	m := bblDateGate.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	// The B/F row is the opening balance, not a transaction.
	if strings.Contains(line, "B/F") {
		return nil
	}

	date, ok := parseShortDate(m[1], "/")
	if !ok {
		return nil
	}

	amounts := amountPattern.FindAllString(line, -1)
	if len(amounts) == 0 {
		return nil
	}

	description := ""
	if dm := bblDescTok.FindStringSubmatch(line); dm != nil {
		description = strings.TrimSpace(dm[1])
	}

	txn := models.Transaction{
		Date:        date,
		Description: description,
	}

	isDeposit := containsAny(line, keywords.Deposit)
	isWithdrawal := containsAny(line, keywords.Withdrawal) && !isDeposit

	switch {
	case len(amounts) >= 2:
		bal, ok := parseAmount(amounts[len(amounts)-1])
		if !ok {
			return nil
		}
		txn.Balance = bal
		if isWithdrawal {
			txn.Withdrawal = amountPtr(amounts[0])
		} else if isDeposit {
			txn.Deposit = amountPtr(amounts[0])
		} else {
			// Same ambiguous-line fallback as KBank: assume withdrawal.
			txn.Withdrawal = amountPtr(amounts[0])
		}
	default:
		bal, ok := parseAmount(amounts[0])
		if !ok {
			return nil
		}
		txn.Balance = bal
	}

	// Via column: a BR#### branch code (optionally followed by the branch
	// name) beats the generic channel keyword scan.
	if bm := bblBranchChannelNamed.FindStringSubmatch(line); bm != nil {
		txn.Channel = bm[1] + " " + bm[2]
	} else if bm := bblBranchChannel.FindStringSubmatch(line); bm != nil {
		txn.Channel = bm[1]
	} else {
		txn.Channel = firstChannel(line, keywords.Channel)
	}
	return &txn
}
