package bookkeeping

// Engine computes forecasts and indicators from the records of a Store.
//
// Methods without a records argument use every live record; the ...Of
// variants work on an explicit subset, like the result of Store.Range.
type Engine struct {
	store *Store

	// FoodKeywords overrides the package FoodKeywords when not empty.
	FoodKeywords []string
}

// NewEngine returns an engine reading from s.
func NewEngine(s *Store) *Engine { return &Engine{store: s} }

// Forecast predicts the next days positions from the whole ledger, see Predict.
func (e *Engine) Forecast(days int) (*Forecast, error) {
	return Predict(e.store.All(), days)
}

// ForecastOf predicts the next days positions from records, see Predict.
func (e *Engine) ForecastOf(records []Record, days int) (*Forecast, error) {
	return Predict(records, days)
}

// ForecastWindow holds the daily averages of [start, end] constant, see PredictWindow.
func (e *Engine) ForecastWindow(start, end string, days int) (*WindowForecast, error) {
	return PredictWindow(e.store.All(), start, end, days)
}

// Indicators computes the indicators of the whole ledger.
func (e *Engine) Indicators() (*Indicators, error) {
	return e.IndicatorsOf(e.store.All())
}

// IndicatorsOf computes the indicators of records.
func (e *Engine) IndicatorsOf(records []Record) (*Indicators, error) {
	return ComputeIndicators(records, e.FoodKeywords...)
}

// Profile computes the economic profile of the whole ledger.
func (e *Engine) Profile() (*Profile, error) {
	return e.ProfileOf(e.store.All())
}

// ProfileOf computes the economic profile of records.
func (e *Engine) ProfileOf(records []Record) (*Profile, error) {
	return EconomicProfile(records, e.FoodKeywords...)
}
