package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatEUR formats an amount the French way: two decimals, comma as the
// decimal separator, spaces between thousands and a trailing euro sign
// (e.g., 1 234,56 €).
func FormatEUR(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	raw := amount.Abs().StringFixed(2)

	parts := strings.SplitN(raw, ".", 2)
	result := groupThousands(parts[0]) + "," + parts[1] + " €"
	if negative && !amount.Round(2).IsZero() {
		result = "-" + result
	}
	return result
}

// groupThousands inserts a space every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	b.Grow(n + n/3)
	head := n % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(s[:head])
	for i := head; i < n; i += 3 {
		b.WriteByte(' ')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatQty prints a quantity without trailing zeros ("2", "2.5").
func FormatQty(qty decimal.Decimal) string {
	return qty.String()
}

// FormatRate prints a tax rate without trailing zeros ("20", "5.5").
func FormatRate(rate decimal.Decimal) string {
	return rate.String()
}
