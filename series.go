package bookkeeping

import (
	"maps"
	"slices"

	"github.com/etnz/bookkeeping/date"
	"github.com/shopspring/decimal"
)

// Point is the total amount recorded on a day.
type Point struct {
	Day    date.Date
	Amount decimal.Decimal
}

// Series is a chronological sequence of daily totals, one point per distinct date.
type Series []Point

// Amounts returns the series values as floats, in order.
func (s Series) Amounts() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Amount.InexactFloat64()
	}
	return values
}

// Mean returns the average daily total, or 0 for an empty series.
func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	var sum decimal.Decimal
	for _, p := range s {
		sum = sum.Add(p.Amount)
	}
	return sum.Div(decimal.NewFromInt(int64(len(s)))).InexactFloat64()
}

// DailyAggregates groups records by date within each kind and sums their amounts.
//
// It returns ErrInsufficientData unless both series have at least two
// distinct dates, a single point cannot support a trend. Any record with an
// unparseable date is an error.
func DailyAggregates(records []Record) (income, expense Series, err error) {
	incomes := make(map[date.Date]decimal.Decimal)
	expenses := make(map[date.Date]decimal.Decimal)
	for _, r := range records {
		day, err := r.Day()
		if err != nil {
			return nil, nil, err
		}
		switch r.Kind {
		case Income:
			incomes[day] = incomes[day].Add(r.Amount)
		case Expense:
			expenses[day] = expenses[day].Add(r.Amount)
		}
	}
	if len(incomes) < 2 || len(expenses) < 2 {
		return nil, nil, ErrInsufficientData
	}
	return newSeries(incomes), newSeries(expenses), nil
}

func newSeries(totals map[date.Date]decimal.Decimal) Series {
	days := slices.SortedFunc(maps.Keys(totals), date.Date.Compare)
	s := make(Series, 0, len(days))
	for _, d := range days {
		s = append(s, Point{Day: d, Amount: totals[d]})
	}
	return s
}
