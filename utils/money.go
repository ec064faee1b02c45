package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount formats a price with exactly two decimals, e.g. "123.40".
// This is the form checkout properties and API responses carry.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatDisplay formats a price for humans as "$1,234.50".
// Uses comma as thousands separator.
func FormatDisplay(amount decimal.Decimal, symbol string) string {
	s := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	// Pre-allocate: digits + separators + sign + symbol + fraction
	b.Grow(len(intPart) + len(intPart)/3 + len(symbol) + 4)
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(symbol)

	// Insert separators from the left.
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(fracPart)

	return b.String()
}

// CurrencySymbol returns the display symbol for an ISO currency code
func CurrencySymbol(currency string) string {
	switch strings.ToUpper(currency) {
	case "USD", "CAD", "AUD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	}
	return strings.ToUpper(currency) + " "
}
