package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// CatalogRow is one predefined service in the form.
type CatalogRow struct {
	Index    int
	Label    string // "{name} ({price} / {unit})"
	Quantity string
}

// CustomRow is a free-text line typed by the operator.
type CustomRow struct {
	Description string
	Price       string
	Quantity    string
}

type RateOption struct {
	Value    string
	Selected bool
}

type TotalsData struct {
	Subtotal  string
	TaxRate   string
	TaxAmount string
	Total     string
}

type QuoteFormData struct {
	BusinessName   string
	CatalogRows    []CatalogRow
	CustomRows     []CustomRow
	SurchargeLabel string
	SurchargeRate  string
	Distance       string
	TaxRates       []RateOption
	DocType        string // "devis" or "facture"
	ClientName     string
	ClientAddress  string
	ClientPhone    string
	Totals         TotalsData
}

// QuoteFormPage is the full page with the quote form.
func QuoteFormPage(data QuoteFormData) templ.Component {
	return Page(data.BusinessName+" - Devis / Facture", data.BusinessName, QuoteForm(data))
}

// QuoteForm is the form itself. Any input change posts the form to
// /quote/totals and swaps the totals block.
func QuoteForm(data QuoteFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<form id="quote-form" hx-post="/quote/totals" hx-trigger="input delay:200ms, change" hx-target="#totals" hx-swap="outerHTML" onsubmit="return generateDocument(this)">`)

		h.raw(`<fieldset><legend>Document</legend>`)
		for _, opt := range []struct{ value, label string }{{"devis", "Devis"}, {"facture", "Facture"}} {
			h.raw(`<label><input type="radio" name="type"`)
			h.attr("value", opt.value)
			if data.DocType == opt.value {
				h.raw(" checked")
			}
			h.raw("> ")
			h.text(opt.label)
			h.raw("</label>")
		}
		h.raw(`</fieldset>`)

		h.raw(`<fieldset><legend>Client</legend>`)
		clientInput(h, "nom", "Nom", data.ClientName, true)
		clientInput(h, "adresse", "Adresse", data.ClientAddress, true)
		clientInput(h, "tel", "Téléphone", data.ClientPhone, false)
		h.raw(`</fieldset>`)

		h.raw(`<fieldset><legend>Prestations</legend><table><thead><tr><th>Prestation</th><th class="num">Quantité</th></tr></thead><tbody>`)
		for _, row := range data.CatalogRows {
			h.raw("<tr><td>")
			h.raw(`<label`)
			h.attr("for", fmt.Sprintf("qty_%d", row.Index))
			h.raw(">")
			h.text(row.Label)
			h.raw(`</label></td><td class="num"><input type="number" min="0" step="0.5"`)
			h.attr("id", fmt.Sprintf("qty_%d", row.Index))
			h.attr("name", fmt.Sprintf("qty_%d", row.Index))
			h.attr("value", row.Quantity)
			h.raw("></td></tr>")
		}
		h.raw(`</tbody></table></fieldset>`)

		h.raw(`<fieldset><legend>Lignes personnalisées</legend><div id="custom-lines">`)
		for _, row := range data.CustomRows {
			h.render(CustomLineRow(row))
		}
		h.raw(`</div><button type="button" hx-get="/quote/custom-line" hx-target="#custom-lines" hx-swap="beforeend">+ Ajouter une ligne</button></fieldset>`)

		h.raw(`<fieldset><legend>Déplacement et TVA</legend><label>`)
		h.text(fmt.Sprintf("%s (%s / km) : ", data.SurchargeLabel, data.SurchargeRate))
		h.raw(`<input type="number" name="km" min="0" step="1"`)
		h.attr("value", data.Distance)
		h.raw("></label><div>TVA : ")
		for _, opt := range data.TaxRates {
			h.raw(`<label style="display:inline"><input type="radio" name="taxRate"`)
			h.attr("value", opt.Value)
			if opt.Selected {
				h.raw(" checked")
			}
			h.raw("> ")
			h.text(opt.Value + " %")
			h.raw("</label> ")
		}
		h.raw(`</div></fieldset>`)

		h.render(TotalsFragment(data.Totals))

		h.raw(`<div class="actions">`)
		h.raw(`<button type="button" hx-post="/draft" hx-include="#quote-form" hx-swap="none">Enregistrer le brouillon</button>`)
		h.raw(`<button type="submit">Générer le PDF</button>`)
		h.raw(`</div></form>`)
		return h.err
	})
}

func clientInput(h *htmlWriter, name, label, value string, required bool) {
	h.raw("<label>")
	h.text(label)
	h.raw(` <input type="text"`)
	h.attr("name", name)
	h.attr("value", value)
	if required {
		h.raw(" required")
	}
	h.raw("></label>")
}

// TotalsFragment is the live totals block, swapped on every form change.
func TotalsFragment(t TotalsData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<div id="totals" class="totals">`)
		h.raw(`<div>Sous-total HT : <span id="subtotal">`)
		h.text(t.Subtotal)
		h.raw(`</span></div><div>TVA (`)
		h.text(t.TaxRate)
		h.raw(`%) : <span id="tax">`)
		h.text(t.TaxAmount)
		h.raw(`</span></div><div><strong>Total TTC : <span id="total">`)
		h.text(t.Total)
		h.raw(`</span></strong></div></div>`)
		return h.err
	})
}

// CustomLineRow is one description/price/quantity row. Fields repeat with
// the same names so the form posts them as parallel lists.
func CustomLineRow(row CustomRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<div class="custom-line"><input type="text" name="custom_desc" placeholder="Description"`)
		h.attr("value", row.Description)
		h.raw(`> <input type="number" name="custom_price" min="0" step="0.01" placeholder="Prix"`)
		h.attr("value", row.Price)
		h.raw(`> <input type="number" name="custom_qty" min="0" step="0.5" placeholder="Qté"`)
		h.attr("value", row.Quantity)
		h.raw(`></div>`)
		return h.err
	})
}
