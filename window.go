package bookkeeping

import (
	"fmt"

	"github.com/etnz/bookkeeping/date"
	"github.com/shopspring/decimal"
)

// WindowForecast is a flat forecast derived from the records of a date window.
type WindowForecast struct {
	Window date.Range

	// Mean amount per transaction of each kind.
	AvgIncome  float64
	AvgExpense float64

	// Total of each kind divided by the number of days in the window.
	DailyIncome  float64
	DailyExpense float64

	// The daily averages held constant over the horizon.
	Forecast
}

// PredictWindow forecasts days positions by holding constant the daily
// average income and expense observed in [start, end], boundaries included.
//
// Unlike Predict it assumes no trend. It returns ErrInsufficientData unless
// the window holds at least one income and one expense record.
func PredictWindow(records []Record, start, end string, days int) (*WindowForecast, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, days)
	}
	from, err := date.Parse(start)
	if err != nil {
		return nil, fmt.Errorf("invalid window start: %w", err)
	}
	to, err := date.Parse(end)
	if err != nil {
		return nil, fmt.Errorf("invalid window end: %w", err)
	}
	window := date.NewRange(from, to)

	var income, expense decimal.Decimal
	var incomes, expenses int64
	for _, r := range records {
		day, err := r.Day()
		if err != nil {
			return nil, err
		}
		if !window.Contains(day) {
			continue
		}
		switch r.Kind {
		case Income:
			income = income.Add(r.Amount)
			incomes++
		case Expense:
			expense = expense.Add(r.Amount)
			expenses++
		}
	}
	if incomes == 0 || expenses == 0 {
		return nil, ErrInsufficientData
	}

	nDays := decimal.NewFromInt(int64(window.Days()))
	w := &WindowForecast{
		Window:       window,
		AvgIncome:    income.Div(decimal.NewFromInt(incomes)).InexactFloat64(),
		AvgExpense:   expense.Div(decimal.NewFromInt(expenses)).InexactFloat64(),
		DailyIncome:  income.Div(nDays).InexactFloat64(),
		DailyExpense: expense.Div(nDays).InexactFloat64(),
	}
	w.Forecast = newForecast(flat(w.DailyIncome, days), flat(w.DailyExpense, days))
	return w, nil
}
