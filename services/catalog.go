package services

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// CatalogItem is a predefined service with a fixed unit price.
type CatalogItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Unit      string
}

// LineEntry is one priced line: a catalog item with its quantity, a custom
// line typed by the operator, or the travel surcharge.
type LineEntry struct {
	Description string
	UnitPrice   decimal.Decimal
	Quantity    decimal.Decimal
}

// Extension returns UnitPrice * Quantity.
func (l LineEntry) Extension() decimal.Decimal {
	return l.UnitPrice.Mul(l.Quantity)
}

// Surcharge is the distance-based travel fee.
type Surcharge struct {
	Distance decimal.Decimal
	Rate     decimal.Decimal
}

func (s Surcharge) Amount() decimal.Decimal {
	return nonNegative(s.Distance).Mul(s.Rate)
}

// plainAmount matches digits with at most one decimal separator. Exponent
// forms are left out: "1e400000000" would be parsed to a value too large to
// round or format.
var plainAmount = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)

// ParseAmount reads a number typed in the form. Both "2,5" and "2.5" are
// accepted; anything unparseable or negative reads as zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.Replace(s, ",", ".", 1)
	if !plainAmount.MatchString(s) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return nonNegative(d)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
