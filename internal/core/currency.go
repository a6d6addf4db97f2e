// Package core implements the ledger query/aggregation engine: entry and
// goal validation, currency normalization, chronological sorting, view
// filtering, balance aggregation and report serialization. It holds no
// store or transport dependencies.
package core

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Fixed conversion multipliers into the base currency. Applied once at
// write time; stored amounts are never re-converted on read.
var conversionRates = map[string]int64{
	"USD": 80,
	"EUR": 90,
	"GBP": 105,
}

// Rate returns the multiplier for a currency code. Unknown codes, including
// the base currency itself, convert at identity.
func Rate(currency string) int64 {
	if r, ok := conversionRates[currency]; ok {
		return r
	}
	return 1
}

// NormalizeAmount parses a submitted amount and converts it to the base
// currency. Amounts must be non-negative whole numbers; anything else is a
// FormatError.
func NormalizeAmount(amount, currency string) (decimal.Decimal, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(amount), 10, 64)
	if err != nil || n < 0 {
		return decimal.Decimal{}, &FormatError{Field: "amount", Value: amount}
	}
	return decimal.NewFromInt(n).Mul(decimal.NewFromInt(Rate(currency))), nil
}
