// Package currency formats amounts for display in a chosen currency.
package currency

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Default is the currency used until the user picks another one.
const Default = "CNY"

// Common lists the currencies offered in the settings page.
var Common = []string{"CNY", "USD", "EUR", "GBP", "JPY", "HKD", "TWD", "KRW", "CHF", "AUD", "CAD"}

// Valid reports whether code is a known ISO 4217 currency code.
func Valid(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// Format renders amount in the given currency, rounded to the currency's
// minor unit, with its symbol and thousands grouping. Unknown codes are
// shown as a plain two decimal number followed by the code.
func Format(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(code)
	cur := money.GetCurrency(code)
	if cur == nil {
		return strings.TrimSpace(amount.StringFixed(2) + " " + code)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
