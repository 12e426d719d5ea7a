package bookkeeping

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Forecast holds predicted amounts for consecutive future positions.
// All three sequences have the same length.
type Forecast struct {
	Income  []float64
	Expense []float64
	Net     []float64 // Income[i] - Expense[i]
}

// Days returns the forecast horizon.
func (f Forecast) Days() int { return len(f.Net) }

// newForecast builds a forecast and its net sequence.
func newForecast(income, expense []float64) Forecast {
	net := make([]float64, len(income))
	for i := range income {
		net[i] = income[i] - expense[i]
	}
	return Forecast{Income: income, Expense: expense, Net: net}
}

// Predict forecasts income and expense for the next days positions.
//
// Each kind's daily totals (see DailyAggregates) are fitted with an ordinary
// least squared line against their rank (0, 1, 2... for each date present,
// calendar gaps are not accounted for) and the line is extrapolated beyond the
// last rank. Predictions are never negative. If the fit cannot be computed, the
// series mean is used for every position.
//
// It returns ErrInsufficientData when the history is too short.
func Predict(records []Record, days int) (*Forecast, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, days)
	}
	income, expense, err := DailyAggregates(records)
	if err != nil {
		return nil, err
	}
	f := newForecast(trend(income, days), trend(expense, days))
	return &f, nil
}

// trend extrapolates s linearly for days positions after its last point.
func trend(s Series, days int) []float64 {
	ys := s.Amounts()
	xs := make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i)
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	if !finite(alpha) || !finite(beta) {
		return flat(s.Mean(), days)
	}

	predictions := make([]float64, days)
	for i := range predictions {
		p := alpha + beta*float64(len(xs)+i)
		if !finite(p) {
			return flat(s.Mean(), days)
		}
		predictions[i] = max(0, p)
	}
	return predictions
}

// flat repeats v days times.
func flat(v float64, days int) []float64 {
	values := make([]float64, days)
	for i := range values {
		values[i] = v
	}
	return values
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
