package utils

import "github.com/shopspring/decimal"

// ParseAmount converts a stored decimal(10,2) string into a decimal.
// Empty or malformed input parses as zero; monetary columns always hold
// well-formed values written by FormatAmount.
func ParseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatAmount renders a decimal as the fixed 2-decimal string stored in
// monetary columns and returned by the API.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
