package services

import "github.com/shopspring/decimal"

// LedgerRow is one issued document in the register.
type LedgerRow struct {
	Number        string
	Type          DocumentType
	Date          string // dd/mm/yyyy
	ClientName    string
	ClientAddress string
	TaxRate       decimal.Decimal
	Subtotal      decimal.Decimal
	TaxAmount     decimal.Decimal
	Total         decimal.Decimal
	Filename      string
}

// LedgerData holds all data needed for the register export.
type LedgerData struct {
	Title         string
	GeneratedDate string
	Rows          []LedgerRow
	TotalSubtotal decimal.Decimal
	TotalTax      decimal.Decimal
	TotalAmount   decimal.Decimal
}

// NewLedgerData sums the rows into the export footer.
func NewLedgerData(title, generatedDate string, rows []LedgerRow) LedgerData {
	data := LedgerData{
		Title:         title,
		GeneratedDate: generatedDate,
		Rows:          rows,
		TotalSubtotal: decimal.Zero,
		TotalTax:      decimal.Zero,
		TotalAmount:   decimal.Zero,
	}
	for _, r := range rows {
		data.TotalSubtotal = data.TotalSubtotal.Add(r.Subtotal)
		data.TotalTax = data.TotalTax.Add(r.TaxAmount)
		data.TotalAmount = data.TotalAmount.Add(r.Total)
	}
	return data
}
