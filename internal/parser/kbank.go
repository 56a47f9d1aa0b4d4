package parser

import (
	"regexp"
	"strings"

	"github.com/chaiyo/thaistatement/internal/keywords"
	"github.com/chaiyo/thaistatement/internal/models"
)

// KBankParser handles Kasikornbank statement PDFs.
//
// KBank statements have free-text transaction lines:
//
//	DD-MM-YY [HH:MM] DESCRIPTION AMOUNT [AMOUNT...] BALANCE [CHANNEL] [DETAILS]
//
// Example: "01-11-25 10:30 Transfer Withdrawal 8,400.00 50,000.00 K PLUS REF123456"
type KBankParser struct{}

func (p *KBankParser) BankName() string {
	return "Kasikornbank"
}

var (
	kbankDateGate = regexp.MustCompile(`^(\d{2}-\d{2}-\d{2})\s+`)
	kbankTimeTok  = regexp.MustCompile(`^\d{2}-\d{2}-\d{2}\s+(\d{2}:\d{2})\s+`)
	// Description is the literal slice between the date/time tokens and the
	// first amount token.
	kbankDescTimed = regexp.MustCompile(`^\d{2}-\d{2}-\d{2}\s+\d{2}:\d{2}\s+(.+?)\d[\d,]*\.\d{2}`)
	kbankDescPlain = regexp.MustCompile(`^\d{2}-\d{2}-\d{2}\s+(.+?)\d[\d,]*\.\d{2}`)

	kbankAccountPattern = regexp.MustCompile(`(\d{3}-\d-\d{5}-\d)`)
	kbankPeriodPattern  = regexp.MustCompile(`(?:Period|รอบระหว่างวันที่)\s+(\d{2}/\d{2}/\d{4})\s*-\s*(\d{2}/\d{2}/\d{4})`)
	kbankNameEN         = regexp.MustCompile(`Account\s*(MR\.|MS\.|MRS\.)\s*(.+?)(?:\s+Reference|\n|$)`)
	kbankNameTH         = regexp.MustCompile(`ชื่อบัญชี\s+(นาย|นาง|น\.ส\.)\s+(.+?)(?:\s+เลขที่|\n|$)`)
	kbankNameLabelled   = regexp.MustCompile(`Account Name\s*:\s*(.+?)(?:\n|Account)`)

	refPattern = regexp.MustCompile(`(?i)(?:Ref\.|Reference|REF)\s*:?\s*(\S+)`)
)

// thaiHonorifics maps Thai name prefixes to their English equivalents.
var thaiHonorifics = map[string]string{
	"นาย":    "MR.",
	"นาง":    "MRS.",
	"น.ส.":   "MS.",
	"นางสาว": "MS.",
}

func (p *KBankParser) Parse(pages []string, source string) (*models.Statement, error) {
	full := strings.Join(pages, "\n")
	headerText := ""
	if len(pages) > 0 {
		headerText = pages[0]
	}

	h := p.extractHeader(headerText)
	h.Opening = keywordAmount(full, keywords.BalanceBegin)
	h.Closing = keywordAmount(full, keywords.BalanceEnd)

	txns := parseAllLines(pages, p.ParseLine)
	return assemble(h, txns, models.BankKBank, DetectLanguage(full), source), nil
}

func (p *KBankParser) extractHeader(text string) header {
	var h header

	if m := kbankAccountPattern.FindStringSubmatch(text); m != nil {
		h.AccountNumber = m[1]
	}
	if m := kbankPeriodPattern.FindStringSubmatch(text); m != nil {
		if d, ok := parseFullDate(m[1]); ok {
			h.PeriodStart = d
		}
		if d, ok := parseFullDate(m[2]); ok {
			h.PeriodEnd = d
		}
	}

	if m := kbankNameEN.FindStringSubmatch(text); m != nil {
		h.AccountName = strings.TrimSpace(m[1] + " " + m[2])
	} else if m := kbankNameTH.FindStringSubmatch(text); m != nil {
		prefix := m[1]
		if en, ok := thaiHonorifics[prefix]; ok {
			prefix = en
		}
		h.AccountName = strings.TrimSpace(prefix + " " + m[2])
	} else if m := kbankNameLabelled.FindStringSubmatch(text); m != nil {
		h.AccountName = strings.TrimSpace(m[1])
	}
	return h
}

// ParseLine converts one KBank statement line into a Transaction, or nil for
// anything that is not a transaction line.
func (p *KBankParser) ParseLine(line string) *models.Transaction {
	m := kbankDateGate.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	// Beginning/Ending Balance rows are header totals, not transactions.
	if containsAny(line, keywords.BalanceBegin) || containsAny(line, keywords.BalanceEnd) {
		return nil
	}

	date, ok := parseShortDate(m[1], "-")
	if !ok {
		return nil
	}

	clock := ""
	if tm := kbankTimeTok.FindStringSubmatch(line); tm != nil {
		clock = parseClock(tm[1])
	}

	amounts := amountPattern.FindAllString(line, -1)
	if len(amounts) == 0 {
		return nil
	}

	description := ""
	if clock != "" {
		if dm := kbankDescTimed.FindStringSubmatch(line); dm != nil {
			description = strings.TrimSpace(dm[1])
		}
	} else if dm := kbankDescPlain.FindStringSubmatch(line); dm != nil {
		description = strings.TrimSpace(dm[1])
	}

	txn := models.Transaction{
		Date:        date,
		Time:        clock,
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
			// Neither keyword table matched. Treating the first amount as a
			// withdrawal is a compatibility heuristic, not a verified
			// business rule; it is a known misclassification source.
			txn.Withdrawal = amountPtr(amounts[0])
		}
	default:
		bal, ok := parseAmount(amounts[0])
		if !ok {
			return nil
		}
		txn.Balance = bal
	}

	txn.Channel = firstChannel(line, keywords.Channel)
	if rm := refPattern.FindStringSubmatch(line); rm != nil {
		txn.Reference = rm[1]
	}
	return &txn
}
