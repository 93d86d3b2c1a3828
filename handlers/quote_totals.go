package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"gardenquote/services"
	"gardenquote/templates"
)

// HandleQuoteTotals recomputes the totals block from the posted form.
func HandleQuoteTotals(q *services.Quoter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		in, err := parseQuoteInput(e.Request, q)
		if err != nil {
			log.Printf("quote_totals: %v", err)
			return e.String(http.StatusBadRequest, "Formulaire invalide")
		}

		data := totalsData(q.Totals(in), in.TaxRatePercent)
		return templates.TotalsFragment(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleCustomLine returns an empty custom-line row to append to the form.
func HandleCustomLine() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return templates.CustomLineRow(templates.CustomRow{}).Render(e.Request.Context(), e.Response)
	}
}
