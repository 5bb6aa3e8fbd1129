// Package validator holds the pure input-format checks applied to user input
// before a conversion request is built. All checks report false on malformed
// input and never error.
package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// IsValidDate reports whether s is a real calendar date in the strict
// YYYY-MM-DD format. Out-of-range day or month values are rejected, so
// "2024-02-30" is invalid.
func IsValidDate(s string) bool {
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return false
	}

	// time.Parse tolerates missing zero padding; the round trip does not.
	return parsed.Format(dateLayout) == s
}

// IsValidAmount reports whether raw is a non-negative decimal number written
// with exactly two decimal places. The input must equal its own canonical
// two-decimal rendering, so "100.00" is valid while "100" and "100.000" are
// not.
func IsValidAmount(raw string) bool {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}

	if value.IsNegative() {
		return false
	}

	return value.StringFixed(2) == raw
}

// IsValidCurrencyCode reports whether s, uppercased, is exactly three Latin
// letters. No registry of real currency codes is consulted.
func IsValidCurrencyCode(s string) bool {
	return currencyCodePattern.MatchString(strings.ToUpper(s))
}
