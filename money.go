package bankbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatAmount renders a decimal amount in the given ISO currency, using the
// currency's symbol and fraction digits (e.g. "$70.00" for 70 USD).
//
// Formatting is a display concern only: stored balances and amounts stay
// plain decimal numbers with no currency attached.
func FormatAmount(amount decimal.Decimal, currency string) string {
	// to get a never nil currency the money constructor is used
	cur := *money.New(0, currency).Currency()
	minor := amount.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// ParseAmount parses a user-supplied amount string into an exact decimal.
// This is the single conversion boundary from text to money.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}
