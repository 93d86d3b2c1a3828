package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"

	"gardenquote/collections"
)

// RecordDocument adds an issued document to the register.
func RecordDocument(app core.App, doc QuoteDocument, filename string) error {
	col, err := app.FindCollectionByNameOrId(collections.DocumentsCollection)
	if err != nil {
		return fmt.Errorf("documents collection: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("number", doc.Number)
	record.Set("doc_type", string(doc.Type))
	record.Set("issued", doc.Date.Format("02/01/2006"))
	record.Set("client_name", doc.ClientName)
	record.Set("client_address", doc.ClientAddress)
	record.Set("tax_rate", doc.TaxRatePercent.InexactFloat64())
	record.Set("subtotal", doc.Totals.Subtotal.Round(2).InexactFloat64())
	record.Set("tax_amount", doc.Totals.TaxAmount.Round(2).InexactFloat64())
	record.Set("total", doc.Totals.Total.Round(2).InexactFloat64())
	record.Set("filename", filename)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("save document %s: %w", doc.Number, err)
	}
	return nil
}

// ListDocuments returns the register, most recent first.
func ListDocuments(app core.App) ([]LedgerRow, error) {
	records, err := app.FindRecordsByFilter(
		collections.DocumentsCollection,
		"id != ''",
		"-created,-number",
		0, 0,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	rows := make([]LedgerRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, LedgerRow{
			Number:        r.GetString("number"),
			Type:          ParseDocumentType(r.GetString("doc_type")),
			Date:          r.GetString("issued"),
			ClientName:    r.GetString("client_name"),
			ClientAddress: r.GetString("client_address"),
			TaxRate:       decimal.NewFromFloat(r.GetFloat("tax_rate")),
			Subtotal:      decimal.NewFromFloat(r.GetFloat("subtotal")),
			TaxAmount:     decimal.NewFromFloat(r.GetFloat("tax_amount")),
			Total:         decimal.NewFromFloat(r.GetFloat("total")),
			Filename:      r.GetString("filename"),
		})
	}
	return rows, nil
}
