// Package consolidate merges parsed statements into per-account histories.
// The pipeline is a pure recomputation: given the same statement batch it
// always derives the same accounts, and previously returned accounts are
// never mutated.
package consolidate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chaiyo/thaistatement/internal/models"
)

// balanceTolerance absorbs satang-level rounding between statements
// (1 satang = 0.01 THB, allow two).
var balanceTolerance = decimal.New(2, -2)

// minNewCoverage is the fraction of a candidate statement's date range that
// must be uncovered for it to be selected once at least one statement is.
const minNewCoverage = 0.1

// Consolidate groups the batch by account number, selects a non-redundant
// statement subset per account (preferring the given language), validates
// balance continuity across consecutive periods, and merges transactions.
// Balance issues are diagnostics; they never fail the run. The returned
// accounts are sorted by account number for deterministic output.
func Consolidate(statements []models.Statement, preferred models.Language) ([]models.Account, []models.BalanceIssue, error) {
	if preferred != models.LangEnglish && preferred != models.LangThai {
		return nil, nil, fmt.Errorf("preferred language must be %q or %q, got %q",
			models.LangEnglish, models.LangThai, preferred)
	}

	groups := GroupByAccount(statements)

	numbers := make([]string, 0, len(groups))
	for number := range groups {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)

	var accounts []models.Account
	var issues []models.BalanceIssue

	for _, number := range numbers {
		selected := SelectByLanguage(groups[number], preferred)
		issues = append(issues, ValidateBalanceContinuity(selected)...)

		account := models.Account{
			AccountNumber:   number,
			Statements:      selected,
			AllTransactions: MergeTransactions(selected),
		}
		for _, stmt := range selected {
			if stmt.AccountName != "" {
				account.AccountName = stmt.AccountName
				break
			}
		}
		accounts = append(accounts, account)
	}

	return accounts, issues, nil
}

// GroupByAccount partitions statements by account number. Order within a
// group follows input order but carries no meaning.
func GroupByAccount(statements []models.Statement) map[string][]models.Statement {
	groups := make(map[string][]models.Statement)
	for _, stmt := range statements {
		groups[stmt.AccountNumber] = append(groups[stmt.AccountNumber], stmt)
	}
	return groups
}

// SelectByLanguage picks a non-redundant statement subset for one account.
// Candidates are walked in (period start, longer period first, preferred
// language first) order against a running set of covered calendar dates; a
// candidate adding no new dates is always skipped, and one adding under 10%
// new coverage is skipped once something is already selected. This suppresses
// re-submissions of the same period in the non-preferred language. The result
// is sorted by period start.
func SelectByLanguage(statements []models.Statement, preferred models.Language) []models.Statement {
	if len(statements) == 0 {
		return nil
	}

	sorted := make([]models.Statement, len(statements))
	copy(sorted, statements)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := &sorted[i], &sorted[j]
		if !a.PeriodStart.Equal(b.PeriodStart) {
			return a.PeriodStart.Before(b.PeriodStart)
		}
		if a.PeriodDays() != b.PeriodDays() {
			return a.PeriodDays() > b.PeriodDays()
		}
		return langRank(a.Language, preferred) < langRank(b.Language, preferred)
	})

	var selected []models.Statement
	covered := make(map[int64]struct{})

	for _, stmt := range sorted {
		dates := periodDates(stmt)
		uncovered := 0
		for _, d := range dates {
			if _, ok := covered[d]; !ok {
				uncovered++
			}
		}

		if uncovered == 0 {
			continue // fully redundant
		}
		if len(selected) > 0 && float64(uncovered)/float64(len(dates)) < minNewCoverage {
			continue // near-redundant re-submission
		}

		selected = append(selected, stmt)
		for _, d := range dates {
			covered[d] = struct{}{}
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].PeriodStart.Before(selected[j].PeriodStart)
	})
	return selected
}

func langRank(lang, preferred models.Language) int {
	if lang == preferred {
		return 0
	}
	return 1
}

// periodDates returns every calendar date of the statement period, inclusive,
// as day numbers.
func periodDates(stmt models.Statement) []int64 {
	var days []int64
	for d := stmt.PeriodStart; !d.After(stmt.PeriodEnd); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Unix()/86400)
	}
	return days
}

// ValidateBalanceContinuity checks, for each consecutive pair of the
// period-sorted statements, that the previous closing balance carries into
// the next opening balance. Only touching or overlapping periods are
// compared; a gap means the mismatch is expected. Differences within the
// satang tolerance pass.
func ValidateBalanceContinuity(statements []models.Statement) []models.BalanceIssue {
	var issues []models.BalanceIssue

	for i := 1; i < len(statements); i++ {
		prev := statements[i-1]
		curr := statements[i]

		if curr.PeriodStart.After(prev.PeriodEnd) {
			continue
		}

		expected := prev.ClosingBalance
		actual := curr.OpeningBalance
		if expected.Sub(actual).Abs().GreaterThan(balanceTolerance) {
			prevCopy := prev
			issues = append(issues, models.BalanceIssue{
				Statement:       curr,
				ExpectedOpening: expected,
				ActualOpening:   actual,
				PrevStatement:   &prevCopy,
			})
		}
	}
	return issues
}

// ValidateTransactionContinuity reports whether every balance in a
// chronologically sorted transaction sequence equals the previous balance
// plus deposit minus withdrawal, within the satang tolerance. This is an
// auxiliary integrity check; the consolidation pipeline does not call it.
func ValidateTransactionContinuity(transactions []models.Transaction) bool {
	for i := 1; i < len(transactions); i++ {
		expected := transactions[i-1].Balance
		if d := transactions[i].Deposit; d != nil {
			expected = expected.Add(*d)
		}
		if w := transactions[i].Withdrawal; w != nil {
			expected = expected.Sub(*w)
		}
		if expected.Sub(transactions[i].Balance).Abs().GreaterThan(balanceTolerance) {
			return false
		}
	}
	return true
}

// MergeTransactions concatenates the transactions of the given statements,
// drops duplicates (first occurrence wins), and sorts the rest by date and
// time, with missing times ordering as midnight.
func MergeTransactions(statements []models.Statement) []models.Transaction {
	var all []models.Transaction
	for _, stmt := range statements {
		all = append(all, stmt.Transactions...)
	}

	unique := dedupe(all)
	sort.SliceStable(unique, func(i, j int) bool {
		a, b := unique[i], unique[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return clockOrMidnight(a.Time) < clockOrMidnight(b.Time)
	})
	return unique
}

func clockOrMidnight(clock string) string {
	if clock == "" {
		return "00:00"
	}
	return clock
}

// dedupe removes transactions describing the same real-world event: same
// date, time, trimmed description, and withdrawal/deposit amounts.
func dedupe(transactions []models.Transaction) []models.Transaction {
	seen := make(map[string]struct{}, len(transactions))
	var unique []models.Transaction

	for _, txn := range transactions {
		key := dedupeKey(txn)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, txn)
	}
	return unique
}

func dedupeKey(txn models.Transaction) string {
	return strings.Join([]string{
		txn.Date.Format(time.DateOnly),
		txn.Time,
		strings.TrimSpace(txn.Description),
		decimalKey(txn.Withdrawal),
		decimalKey(txn.Deposit),
	}, "|")
}

func decimalKey(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
