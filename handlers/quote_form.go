package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"gardenquote/services"
	"gardenquote/templates"
)

// HandleQuoteForm renders the quote form, pre-filled from the saved draft
// when there is one.
func HandleQuoteForm(q *services.Quoter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		in := services.QuoteInput{
			Type:           services.DocQuote,
			TaxRatePercent: q.DefaultTaxRate,
		}

		if d, ok := q.LoadDraft(e.Request.Context()); ok {
			in.Type = services.ParseDocumentType(string(d.Type))
			in.TaxRatePercent = q.ResolveTaxRate(d.TaxRatePercent)
			in.ClientName = d.ClientName
			in.ClientAddress = d.ClientAddress
			in.ClientPhone = d.ClientPhone
			in.Distance = d.Distance
		}

		data := formData(q, in, nil)
		return templates.QuoteFormPage(data).Render(e.Request.Context(), e.Response)
	}
}
