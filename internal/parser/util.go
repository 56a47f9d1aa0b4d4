package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// amountPattern matches grouped-thousands amounts like 1,234.56 or 25.99.
var amountPattern = regexp.MustCompile(`[\d,]+\.\d{2}`)

// timeOfDayPattern matches a HH:MM clock time token.
var timeOfDayPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// parseAmount converts "8,400.00" to an exact decimal. Returns false for
// empty or malformed input; amounts are never routed through float64.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// amountPtr is a convenience for optional withdrawal/deposit fields.
func amountPtr(s string) *decimal.Decimal {
	d, ok := parseAmount(s)
	if !ok {
		return nil
	}
	return &d
}

// parseShortDate parses DD-MM-YY or DD/MM/YY (two-digit years assumed 20xx)
// into a UTC calendar date. Returns false for impossible dates.
func parseShortDate(s, sep string) (time.Time, bool) {
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	return makeDate(2000+year, month, day)
}

// parseFullDate parses DD/MM/YYYY into a UTC calendar date.
func parseFullDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	return makeDate(year, month, day)
}

// makeDate builds a UTC midnight date and rejects values that time.Date
// would silently normalize (e.g. 31/02).
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || int(d.Month()) != month || d.Year() != year {
		return time.Time{}, false
	}
	return d, true
}

// parseClock validates a HH:MM token. An empty result means the line carries
// no usable time.
func parseClock(s string) string {
	if !timeOfDayPattern.MatchString(s) {
		return ""
	}
	hour, _ := strconv.Atoi(s[:2])
	minute, _ := strconv.Atoi(s[3:])
	if hour > 23 || minute > 59 {
		return ""
	}
	return s
}

// containsAny reports whether text contains any of the needles verbatim.
func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

// firstChannel scans the ordered channel keyword list and returns the first
// match (case-insensitive), or "".
func firstChannel(line string, channels []string) string {
	lower := strings.ToLower(line)
	for _, ch := range channels {
		if strings.Contains(lower, strings.ToLower(ch)) {
			return ch
		}
	}
	return ""
}

// keywordAmount searches text for "<keyword> <amount>" using each keyword in
// order and returns the first trailing amount found.
func keywordAmount(text string, kws []string) *decimal.Decimal {
	for _, kw := range kws {
		re := regexp.MustCompile(regexp.QuoteMeta(kw) + `\s+([\d,]+\.\d{2})`)
		if m := re.FindStringSubmatch(text); m != nil {
			return amountPtr(m[1])
		}
	}
	return nil
}
