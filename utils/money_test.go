package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "123.40", FormatAmount(decimal.RequireFromString("123.4")))
	assert.Equal(t, "99.99", FormatAmount(decimal.RequireFromString("99.99")))
	assert.Equal(t, "200.00", FormatAmount(decimal.NewFromInt(200)))
	assert.Equal(t, "-10.00", FormatAmount(decimal.NewFromInt(-10)))
}

func TestFormatDisplay(t *testing.T) {
	cases := map[string]string{
		"0":         "$0.00",
		"999.5":     "$999.50",
		"1234.5":    "$1,234.50",
		"1234567":   "$1,234,567.00",
		"-25":       "-$25.00",
		"123456.78": "$123,456.78",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatDisplay(decimal.RequireFromString(in), "$"), in)
	}
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", CurrencySymbol("usd"))
	assert.Equal(t, "€", CurrencySymbol("EUR"))
	assert.Equal(t, "COP ", CurrencySymbol("cop"))
}
