package cli

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount_Valid(t *testing.T) {
	cases := map[string]string{
		"4.50":  "4.5",
		" 100 ": "100",
		"-20":   "-20",
		"0":     "0",
		"1e3":   "1000",
		"0.001": "0.001",
		"1e20":  "100000000000000000000",
	}
	for in, want := range cases {
		got, err := ParseAmount(in)
		require.NoError(t, err, "input %q", in)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "input %q: got %s", in, got)
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "ten", "4,50", "$5", "NaN", "Inf", "1.2.3",
		"1e1000000", "1e-1000000", "1e21", "12345678901234567890123456789012345678901"} {
		_, err := ParseAmount(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$4.50", FormatMoney("$", decimal.RequireFromString("4.5")))
	assert.Equal(t, "$-4.50", FormatMoney("$", decimal.RequireFromString("-4.5")))
	assert.Equal(t, "€0.00", FormatMoney("€", decimal.Zero))
	assert.Equal(t, "$1.23", FormatMoney("$", decimal.RequireFromString("1.234")))
}
