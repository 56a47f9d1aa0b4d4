package parser

import (
	"strings"

	"github.com/chaiyo/thaistatement/internal/keywords"
	"github.com/chaiyo/thaistatement/internal/models"
)

// DetectBank classifies the full document text as one of the three supported
// issuers. Markers are checked in fixed precedence order (SCB, then BBL) and
// the first match wins; a document matching nothing is treated as KBank,
// whose statements carry no reliable self-identifying string.
func DetectBank(text string) models.BankType {
	if containsAny(text, []string{"SIAM COMMERCIAL", "ไทยพาณิชย์", "SCB"}) {
		return models.BankSCB
	}
	if containsAny(text, []string{"Bangkok Bank", "ธนาคารกรุงเทพ", "Bualuang"}) {
		return models.BankBBL
	}
	return models.BankKBank
}

// DetectLanguage classifies the document as Thai or English by counting
// header/label phrases. Transaction descriptions are bilingual regardless of
// statement language, so only header keywords are counted; a tie falls back
// to counting Thai-script codepoints.
func DetectLanguage(text string) models.Language {
	thaiCount := countKeywords(text, keywords.ThaiHeader)
	englishCount := countKeywords(text, keywords.EnglishHeader)

	if thaiCount > englishCount {
		return models.LangThai
	}
	if englishCount > thaiCount {
		return models.LangEnglish
	}

	// Header labels tied (or absent). Thai statements still carry far more
	// Thai script than the address lines of an English one.
	thaiChars := 0
	for _, r := range text {
		if r >= '฀' && r <= '๿' {
			thaiChars++
		}
	}
	if thaiChars > 200 {
		return models.LangThai
	}
	return models.LangEnglish
}

func countKeywords(text string, kws []string) int {
	n := 0
	for _, kw := range kws {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}
