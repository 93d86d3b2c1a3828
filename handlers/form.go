package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"gardenquote/services"
	"gardenquote/templates"
)

// maxFormMemory bounds multipart parsing; the form has no file fields.
const maxFormMemory = 1 << 20

// parseQuoteInput reads the posted form into a QuoteInput. Numbers are read
// leniently: anything unparseable counts as zero.
func parseQuoteInput(r *http.Request, q *services.Quoter) (services.QuoteInput, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return services.QuoteInput{}, fmt.Errorf("parse form: %w", err)
	}
	form := r.PostForm

	in := services.QuoteInput{
		Type:           services.ParseDocumentType(form.Get("type")),
		TaxRatePercent: q.DefaultTaxRate,
		ClientName:     form.Get("nom"),
		ClientAddress:  form.Get("adresse"),
		ClientPhone:    form.Get("tel"),
		Distance:       services.ParseAmount(form.Get("km")),
	}
	if raw := strings.TrimSpace(form.Get("taxRate")); raw != "" {
		in.TaxRatePercent = q.ResolveTaxRate(services.ParseAmount(raw))
	}

	in.CatalogQuantities = make([]decimal.Decimal, len(q.Catalog))
	for i := range q.Catalog {
		in.CatalogQuantities[i] = services.ParseAmount(form.Get(fmt.Sprintf("qty_%d", i)))
	}

	descs := form["custom_desc"]
	prices := form["custom_price"]
	qtys := form["custom_qty"]
	n := max(len(descs), len(prices), len(qtys))
	for i := 0; i < n; i++ {
		in.CustomLines = append(in.CustomLines, services.LineEntry{
			Description: strings.TrimSpace(valueAt(descs, i)),
			UnitPrice:   services.ParseAmount(valueAt(prices, i)),
			Quantity:    services.ParseAmount(valueAt(qtys, i)),
		})
	}
	return in, nil
}

func valueAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func totalsData(t services.Totals, rate decimal.Decimal) templates.TotalsData {
	return templates.TotalsData{
		Subtotal:  services.FormatEUR(t.Subtotal),
		TaxRate:   services.FormatRate(rate),
		TaxAmount: services.FormatEUR(t.TaxAmount),
		Total:     services.FormatEUR(t.Total),
	}
}

// formData maps an input back onto the form, catalog rows in catalog order.
func formData(q *services.Quoter, in services.QuoteInput, custom []templates.CustomRow) templates.QuoteFormData {
	data := templates.QuoteFormData{
		BusinessName:   q.Business.Name,
		CustomRows:     custom,
		SurchargeLabel: q.SurchargeLabel,
		SurchargeRate:  services.FormatEUR(q.SurchargeRate),
		DocType:        string(in.Type),
		ClientName:     in.ClientName,
		ClientAddress:  in.ClientAddress,
		ClientPhone:    in.ClientPhone,
		Totals:         totalsData(q.Totals(in), in.TaxRatePercent),
	}
	if in.Distance.IsPositive() {
		data.Distance = in.Distance.String()
	}

	for i, item := range q.Catalog {
		row := templates.CatalogRow{
			Index: i,
			Label: fmt.Sprintf("%s (%s / %s)", item.Name, services.FormatEUR(item.UnitPrice), item.Unit),
		}
		if i < len(in.CatalogQuantities) && in.CatalogQuantities[i].IsPositive() {
			row.Quantity = in.CatalogQuantities[i].String()
		}
		data.CatalogRows = append(data.CatalogRows, row)
	}

	for _, r := range q.TaxRates {
		data.TaxRates = append(data.TaxRates, templates.RateOption{
			Value:    services.FormatRate(r),
			Selected: r.Equal(in.TaxRatePercent),
		})
	}
	return data
}
