package cli

import (
	"errors"
	"strings"

	"github.com/dafibh/budgetly/internal/domain"
	"github.com/shopspring/decimal"
)

var errNotANumber = errors.New("not a number")

// ParseAmount parses user input as a currency amount. Anything that is not a
// finite decimal number within domain.CheckAmount bounds is rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errNotANumber
	}
	d, err := decimal.NewFromString(s)
	if err != nil || domain.CheckAmount(d) != nil {
		return decimal.Zero, errNotANumber
	}
	return d, nil
}

// FormatMoney renders an amount with two decimals after the currency symbol
func FormatMoney(currency string, d decimal.Decimal) string {
	return currency + d.StringFixed(2)
}
