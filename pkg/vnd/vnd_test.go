package vnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name       string
		amount     int64
		withSymbol bool
		expected   string
	}{
		{"zero without symbol", 0, false, "0"},
		{"zero with symbol", 0, true, "0 ₫"},
		{"below grouping threshold", 999, false, "999"},
		{"exactly one group", 1000, false, "1.000"},
		{"one million with symbol", 1000000, true, "1.000.000 ₫"},
		{"typical listing price", 315000000, false, "315.000.000"},
		{"uneven leading group", 12345678, false, "12.345.678"},
		{"single digit", 7, true, "7 ₫"},
		{"negative formatted by magnitude", -25000, false, "25.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.amount, tt.withSymbol))
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		withSymbol bool
		expected   string
	}{
		{"empty input formats as zero", "", true, "0 ₫"},
		{"non-numeric input formats as zero", "free", false, "0"},
		{"pre-grouped dots", "1.000.000", false, "1.000.000"},
		{"comma separators", "2,500,000", true, "2.500.000 ₫"},
		{"plain digits", "45000", false, "45.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatString(tt.raw, tt.withSymbol))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		formatted string
		expected  int64
	}{
		{"empty", "", 0},
		{"zero", "0", 0},
		{"grouped with symbol", "1.000.000 ₫", 1000000},
		{"grouped without symbol", "315.000.000", 315000000},
		{"plain digits", "45000", 45000},
		{"garbage", "lien he", 0},
		{"digits amid text", "gia 99.000 dong", 99000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.formatted))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	amounts := []int64{0, 1, 9, 10, 999, 1000, 45000, 999999, 1000000, 315000000, 1234567890123}

	for _, n := range amounts {
		for _, withSymbol := range []bool{true, false} {
			assert.Equal(t, n, Parse(Format(n, withSymbol)),
				"round trip failed for %d (symbol=%v)", n, withSymbol)
		}
	}
}
