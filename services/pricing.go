// Package services provides pricing, numbering, draft and document
// generation for quotes and invoices.
package services

import "github.com/shopspring/decimal"

// Totals is always derived from the current inputs and never stored.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// CalcTotals applies taxRatePercent to subtotal.
func CalcTotals(subtotal, taxRatePercent decimal.Decimal) Totals {
	tax := subtotal.Mul(taxRatePercent).Shift(-2)
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal.Add(tax),
	}
}

// SumLines returns the sum of the line extensions.
func SumLines(lines []LineEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Extension())
	}
	return sum
}

// ComputeTotals prices the catalog quantities (matched to catalog by index),
// the custom lines and the surcharge, then applies the tax rate.
// Missing quantities count as zero, extra ones are ignored and negative
// values are clamped to zero.
func ComputeTotals(catalog []CatalogItem, quantities []decimal.Decimal, custom []LineEntry, surcharge Surcharge, taxRatePercent decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for i, item := range catalog {
		if i >= len(quantities) {
			break
		}
		subtotal = subtotal.Add(item.UnitPrice.Mul(nonNegative(quantities[i])))
	}
	for _, l := range custom {
		subtotal = subtotal.Add(nonNegative(l.UnitPrice).Mul(nonNegative(l.Quantity)))
	}
	subtotal = subtotal.Add(surcharge.Amount())
	return CalcTotals(subtotal, taxRatePercent)
}
