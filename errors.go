package bookkeeping

import "errors"

var (
	ErrInvalidAmount = errors.New("amount must be strictly positive")
	ErrInvalidKind   = errors.New("kind must be income or expense")

	// ErrInsufficientData reports that there is not enough history to compute
	// a result. It is not a failure: callers should tell the user to record more
	// transactions.
	ErrInsufficientData = errors.New("insufficient data")

	ErrInvalidHorizon = errors.New("forecast horizon must not be negative")
)
