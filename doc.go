// Package bookkeeping provides a small, local-first personal bookkeeping
// library. It records discrete income and expense transactions, persists them
// in a single human-readable JSON file, and derives simple analytics from
// them.
//
// The core functionalities include:
//   - Ledger Store: the authoritative, insertion-ordered set of records, mirrored
//     wholesale to a JSON file on every mutation (see Store).
//   - Aggregates: totals of income, expense and balance over any subset of
//     records (see Summarize).
//   - Forecasts: a linear trend forecast fitted on daily aggregates (see
//     Predict) and a flat forecast held at a window's daily averages (see
//     PredictWindow).
//   - Economic indicators: Engel coefficient, average and marginal propensity
//     to consume, with a canned interpretation (see ComputeIndicators and
//     EconomicProfile).
//
// Analytics distinguish "not enough data" from genuine failures: the former is
// reported as ErrInsufficientData and must be tested with errors.Is.
//
// This package serves as the foundational logic for the `bk` command-line
// tool.
package bookkeeping
