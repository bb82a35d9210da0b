// Package textutils provides tokenization and text extraction helpers for the
// suggestion engine.
package textutils

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	// A currency marker (₹, Rs, Rs., INR) immediately followed by 2-8 digits.
	markedAmountPattern = regexp.MustCompile(`(?i)(?:₹|Rs\.?|INR)\s?(\d{2,8})`)
	bareAmountPattern   = regexp.MustCompile(`\b\d{2,8}\b`)
)

// ExtractAmount pulls a currency-marked monetary figure out of free text.
// Receipts often list line items before a final total, so when several marked
// figures occur the last one wins. The second return value is false when no
// currency-marked number exists.
func ExtractAmount(text string) (decimal.Decimal, bool) {
	matches := markedAmountPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(matches[len(matches)-1][1])
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// ExtractBareAmount scans for the first bare 2-8 digit number. It is the
// fallback used when the text carries no currency marker at all.
func ExtractBareAmount(text string) (decimal.Decimal, bool) {
	match := bareAmountPattern.FindString(text)
	if match == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}
