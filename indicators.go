package bookkeeping

import (
	"maps"
	"slices"
	"strings"

	"github.com/etnz/bookkeeping/date"
	"github.com/shopspring/decimal"
)

// FoodKeywords are matched, case-insensitively, against expense descriptions
// to estimate food spending.
var FoodKeywords = []string{"food", "餐饮", "吃饭", "食品", "超市"}

// Indicators are descriptive ratios of a set of records.
type Indicators struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	FoodExpense  decimal.Decimal

	// Engel is the share of food in total expense.
	Engel Ratio
	// APC is the average propensity to consume: total expense over total income.
	APC Ratio
	// MPC is the marginal propensity to consume, see ComputeIndicators.
	MPC Ratio
}

// ComputeIndicators computes the economic indicators of records.
//
// keywords replace FoodKeywords when provided. Ratios with a zero denominator
// are 0.
//
// The marginal propensity to consume compares consecutive calendar months:
// over every pair of adjacent months where income strictly increased, it is
// the sum of expense changes divided by the sum of income changes. It is 0
// with fewer than two months or without any increasing pair.
//
// It returns ErrInsufficientData for an empty set of records.
func ComputeIndicators(records []Record, keywords ...string) (*Indicators, error) {
	if len(records) == 0 {
		return nil, ErrInsufficientData
	}
	if len(keywords) == 0 {
		keywords = FoodKeywords
	}

	summary := Summarize(records)
	ind := &Indicators{
		TotalIncome:  summary.Income,
		TotalExpense: summary.Expense,
	}
	for _, r := range records {
		if r.Kind == Expense && matchAny(r.Description, keywords) {
			ind.FoodExpense = ind.FoodExpense.Add(r.Amount)
		}
	}
	ind.Engel = ratio(ind.FoodExpense, ind.TotalExpense)
	ind.APC = ratio(ind.TotalExpense, ind.TotalIncome)

	ind.MPC = marginalPropensity(records)
	return ind, nil
}

func matchAny(description string, keywords []string) bool {
	description = strings.ToLower(description)
	for _, k := range keywords {
		if strings.Contains(description, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// ratio returns a/b, or 0 when b is not positive.
func ratio(a, b decimal.Decimal) Ratio {
	if !b.IsPositive() {
		return 0
	}
	return Ratio(a.Div(b).InexactFloat64())
}

func marginalPropensity(records []Record) Ratio {
	monthly := make(map[string]Summary)
	for _, r := range records {
		key := monthKey(r.Date)
		m := monthly[key]
		switch r.Kind {
		case Income:
			m.Income = m.Income.Add(r.Amount)
		case Expense:
			m.Expense = m.Expense.Add(r.Amount)
		}
		monthly[key] = m
	}

	months := slices.Sorted(maps.Keys(monthly))
	var incomeChanges, expenseChanges decimal.Decimal
	for i := 1; i < len(months); i++ {
		prev, cur := monthly[months[i-1]], monthly[months[i]]
		dIncome := cur.Income.Sub(prev.Income)
		if !dIncome.IsPositive() {
			continue
		}
		incomeChanges = incomeChanges.Add(dIncome)
		expenseChanges = expenseChanges.Add(cur.Expense.Sub(prev.Expense))
	}
	return ratio(expenseChanges, incomeChanges)
}

// monthKey returns the YYYY-MM key of a record date. A date that does not
// parse is keyed by its first seven characters.
func monthKey(day string) string {
	if d, err := date.Parse(day); err == nil {
		return d.MonthKey()
	}
	if len(day) > 7 {
		return day[:7]
	}
	return day
}
