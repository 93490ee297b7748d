// Package vnd formats and parses whole-unit Vietnamese dong amounts for
// display. Amounts on this marketplace are integer VND with no fractional
// part, grouped with a dot every three digits (1000000 -> "1.000.000").
package vnd

import (
	"strconv"
	"strings"
)

// Symbol is the currency suffix appended to formatted amounts.
const Symbol = " ₫"

// Format renders an integer VND amount with dot grouping. When withSymbol is
// true the " ₫" suffix is appended. Negative inputs are formatted by
// magnitude; amounts are non-negative by contract.
func Format(amount int64, withSymbol bool) string {
	if amount < 0 {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3 + len(Symbol))

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}

	if withSymbol {
		b.WriteString(Symbol)
	}
	return b.String()
}

// FormatString formats a raw amount string that may already carry group
// separators. It is a display helper, not a validator: empty or non-numeric
// input formats as zero so a single bad record cannot break a profile render.
func FormatString(raw string, withSymbol bool) string {
	return Format(Parse(raw), withSymbol)
}

// Parse extracts the integer amount from a formatted string. Every character
// other than a digit is discarded, so both "1.000.000 ₫" and "1,000,000"
// parse to 1000000. Empty or digit-free input parses to zero.
func Parse(formatted string) int64 {
	var b strings.Builder
	b.Grow(len(formatted))
	for _, r := range formatted {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return 0
	}

	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
