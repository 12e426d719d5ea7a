package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Options controls how amounts are displayed.
type Options struct {
	// Currency is an ISO 4217 code used for display only, amounts are never
	// converted. Empty means plain numbers.
	Currency string
}

// Amount formats d using the display currency.
func (o Options) Amount(d decimal.Decimal) string {
	if o.Currency == "" {
		return d.StringFixed(2)
	}
	cur := money.GetCurrency(o.Currency)
	if cur == nil {
		return fmt.Sprintf("%s %s", d.StringFixed(2), o.Currency)
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// Float formats an inexact amount, like a forecast value.
func (o Options) Float(v float64) string {
	return o.Amount(decimal.NewFromFloat(v))
}

// Signed is like Amount but always shows the sign of non zero values.
func (o Options) Signed(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + o.Amount(d)
	}
	return o.Amount(d)
}
