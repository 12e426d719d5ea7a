package bookkeeping

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDailyAggregates(t *testing.T) {
	records := []Record{
		R("100", Income, "2023-01-02", ""),
		R("50", Income, "2023-01-01", ""),
		R("25", Income, "2023-01-02", "same day"),
		R("10", Expense, "2023-01-05", ""),
		R("20", Expense, "2023-01-03", ""),
	}
	income, expense, err := DailyAggregates(records)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{50, 125}, income.Amounts()); diff != "" {
		t.Errorf("income mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{20, 10}, expense.Amounts()); diff != "" {
		t.Errorf("expense mismatch (-want +got):\n%s", diff)
	}
	if got := income[0].Day.String(); got != "2023-01-01" {
		t.Errorf("income series not sorted, starts on %s", got)
	}
	if got := expense.Mean(); got != 15 {
		t.Errorf("Mean() = %v, want 15", got)
	}
}

func TestPredict_LinearTrend(t *testing.T) {
	records := []Record{
		R("100", Income, "2023-01-01", ""),
		R("200", Income, "2023-01-02", ""),
		// a calendar gap does not change the rank of the next date
		R("300", Income, "2023-01-10", ""),
		R("50", Expense, "2023-01-01", ""),
		R("50", Expense, "2023-01-03", ""),
	}
	got, err := Predict(records, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := &Forecast{
		Income:  []float64{400, 500},
		Expense: []float64{50, 50},
		Net:     []float64{350, 450},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Predict() mismatch (-want +got):\n%s", diff)
	}
}

func TestPredict_ClampsNegative(t *testing.T) {
	records := []Record{
		R("100", Income, "2023-01-01", ""),
		R("100", Income, "2023-01-02", ""),
		R("300", Expense, "2023-01-01", ""),
		R("200", Expense, "2023-01-02", ""),
	}
	got, err := Predict(records, 4)
	if err != nil {
		t.Fatal(err)
	}
	wantExpense := []float64{100, 0, 0, 0}
	if diff := cmp.Diff(wantExpense, got.Expense, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("expense mismatch (-want +got):\n%s", diff)
	}
	wantNet := []float64{0, 100, 100, 100}
	if diff := cmp.Diff(wantNet, got.Net, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("net mismatch (-want +got):\n%s", diff)
	}
}

func TestPredict_Horizon(t *testing.T) {
	records := []Record{
		R("1000", Income, "2023-01-01", "salary"),
		R("300", Income, "2023-01-05", "bonus"),
		R("1200", Income, "2023-02-01", "salary"),
		R("80", Expense, "2023-01-02", "food"),
		R("700", Expense, "2023-01-03", "rent"),
		R("20", Expense, "2023-01-07", "bus"),
	}
	for _, days := range []int{0, 1, 7, 30, 365} {
		f, err := Predict(records, days)
		if err != nil {
			t.Fatalf("Predict(%d) error: %v", days, err)
		}
		if len(f.Income) != days || len(f.Expense) != days || len(f.Net) != days || f.Days() != days {
			t.Fatalf("Predict(%d) lengths = %d/%d/%d", days, len(f.Income), len(f.Expense), len(f.Net))
		}
		for i := range days {
			if f.Income[i] < 0 || f.Expense[i] < 0 {
				t.Errorf("Predict(%d) negative value at %d: %v/%v", days, i, f.Income[i], f.Expense[i])
			}
			if !approx(f.Net[i], f.Income[i]-f.Expense[i]) {
				t.Errorf("Predict(%d) net[%d] = %v, want %v", days, i, f.Net[i], f.Income[i]-f.Expense[i])
			}
		}
	}
}

func TestPredict_InsufficientData(t *testing.T) {
	testCases := []struct {
		name    string
		records []Record
	}{
		{name: "empty ledger"},
		{
			name: "single expense",
			records: []Record{
				R("100", Income, "2023-01-01", ""),
				R("100", Income, "2023-01-02", ""),
				R("30", Expense, "2023-01-01", ""),
			},
		},
		{
			name: "expenses on a single date",
			records: []Record{
				R("100", Income, "2023-01-01", ""),
				R("100", Income, "2023-01-02", ""),
				R("30", Expense, "2023-01-03", ""),
				R("40", Expense, "2023-01-03", ""),
			},
		},
		{
			name: "no income",
			records: []Record{
				R("30", Expense, "2023-01-01", ""),
				R("40", Expense, "2023-01-03", ""),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Predict(tc.records, 30)
			if !errors.Is(err, ErrInsufficientData) {
				t.Errorf("Predict() = %v, %v, want ErrInsufficientData", f, err)
			}
		})
	}
}

func TestPredict_Errors(t *testing.T) {
	records := []Record{
		R("100", Income, "2023-01-01", ""),
		R("100", Income, "01/02/2023", ""),
		R("30", Expense, "2023-01-01", ""),
		R("30", Expense, "2023-01-02", ""),
	}
	_, err := Predict(records, 3)
	if err == nil || errors.Is(err, ErrInsufficientData) {
		t.Errorf("Predict() with a malformed date = %v, want a parse failure", err)
	}

	_, err = Predict(records[2:], -1)
	if !errors.Is(err, ErrInvalidHorizon) {
		t.Errorf("Predict(-1) = %v, want ErrInvalidHorizon", err)
	}
}

func TestPredictWindow(t *testing.T) {
	records := []Record{
		R("1000", Income, "2023-01-01", "salary"),
		R("550", Income, "2023-01-31", "freelance"),
		R("310", Expense, "2023-01-10", "rent"),
		R("9999", Expense, "2023-02-01", "outside the window"),
		R("9999", Income, "2022-12-31", "outside the window"),
	}
	got, err := PredictWindow(records, "2023-01-01", "2023-01-31", 3)
	if err != nil {
		t.Fatal(err)
	}
	if got.Window.Days() != 31 {
		t.Errorf("Window.Days() = %d, want 31", got.Window.Days())
	}
	if got.AvgIncome != 775 || got.AvgExpense != 310 {
		t.Errorf("per transaction averages = %v/%v, want 775/310", got.AvgIncome, got.AvgExpense)
	}
	if got.DailyIncome != 50 || got.DailyExpense != 10 {
		t.Errorf("daily averages = %v/%v, want 50/10", got.DailyIncome, got.DailyExpense)
	}
	want := Forecast{
		Income:  []float64{50, 50, 50},
		Expense: []float64{10, 10, 10},
		Net:     []float64{40, 40, 40},
	}
	if diff := cmp.Diff(want, got.Forecast, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("forecast mismatch (-want +got):\n%s", diff)
	}
}

func TestPredictWindow_NetIsElementwise(t *testing.T) {
	records := []Record{
		R("123.45", Income, "2023-03-02", ""),
		R("67.8", Expense, "2023-03-05", ""),
		R("1.1", Expense, "2023-03-06", ""),
	}
	got, err := PredictWindow(records, "2023-03-01", "2023-03-07", 10)
	if err != nil {
		t.Fatal(err)
	}
	if got.Days() != 10 {
		t.Fatalf("Days() = %d, want 10", got.Days())
	}
	for i := range got.Net {
		if !approx(got.Net[i], got.Income[i]-got.Expense[i]) {
			t.Errorf("net[%d] = %v, want %v", i, got.Net[i], got.Income[i]-got.Expense[i])
		}
	}
}

func TestPredictWindow_Unavailable(t *testing.T) {
	records := scenarioA()
	testCases := []struct {
		name       string
		start, end string
	}{
		{name: "no income in window", start: "2023-01-10", end: "2023-01-31"},
		{name: "no expense in window", start: "2023-01-01", end: "2023-01-10"},
		{name: "start after end", start: "2023-03-01", end: "2023-01-01"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := PredictWindow(records, tc.start, tc.end, 30)
			if !errors.Is(err, ErrInsufficientData) {
				t.Errorf("PredictWindow(%q, %q) = %v, want ErrInsufficientData", tc.start, tc.end, err)
			}
		})
	}

	if _, err := PredictWindow(records, "last month", "2023-01-31", 30); err == nil || errors.Is(err, ErrInsufficientData) {
		t.Errorf("PredictWindow() with a malformed start = %v, want a parse failure", err)
	}
}

func TestEngine(t *testing.T) {
	s := openTestStore(t)
	e := NewEngine(s)

	// Scenario B: an empty ledger has no forecast nor indicators.
	if _, err := e.Forecast(30); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Forecast() on an empty ledger = %v", err)
	}
	if _, err := e.Indicators(); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Indicators() on an empty ledger = %v", err)
	}
	if _, err := e.Profile(); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Profile() on an empty ledger = %v", err)
	}

	// Scenario C: two income dates but a single expense.
	mustAdd(t, s,
		R("100", Income, "2023-01-01", ""),
		R("120", Income, "2023-01-02", ""),
		R("40", Expense, "2023-01-02", "food"),
	)
	if _, err := e.Forecast(30); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Forecast() with a single expense = %v", err)
	}

	mustAdd(t, s, R("60", Expense, "2023-01-03", "dinner"))
	if f, err := e.Forecast(5); err != nil || f.Days() != 5 {
		t.Errorf("Forecast(5) = %v, %v", f, err)
	}
	jan2, _ := s.Range("2023-01-02", "2023-01-02")
	if _, err := e.ForecastOf(jan2, 5); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("ForecastOf() a single day = %v", err)
	}
	if w, err := e.ForecastWindow("2023-01-01", "2023-01-04", 2); err != nil || w.DailyExpense != 25 {
		t.Errorf("ForecastWindow() = %+v, %v", w, err)
	}

	e.FoodKeywords = []string{"dinner"}
	ind, err := e.Indicators()
	if err != nil {
		t.Fatal(err)
	}
	if !ind.Engel.Equal(0.6) {
		t.Errorf("Engel with custom keywords = %v, want 0.6", ind.Engel)
	}
}
