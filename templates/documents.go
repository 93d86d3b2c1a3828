package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type DocumentRow struct {
	Number     string
	Type       string // DEVIS or FACTURE
	Date       string
	ClientName string
	Subtotal   string
	Total      string
	Filename   string
}

type DocumentsData struct {
	BusinessName string
	Rows         []DocumentRow
	TotalAmount  string
}

// DocumentsPage is the full register page.
func DocumentsPage(data DocumentsData) templ.Component {
	return Page(data.BusinessName+" - Registre", data.BusinessName, DocumentsContent(data))
}

// DocumentsContent is the register table without the page shell.
func DocumentsContent(data DocumentsData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<h2>Documents émis</h2>`)
		if len(data.Rows) == 0 {
			h.raw(`<p>Aucun document émis pour le moment.</p>`)
			return h.err
		}

		h.raw(`<p><a href="/documents/export.xlsx">Exporter (Excel)</a></p>`)
		h.raw(`<table><thead><tr><th>Numéro</th><th>Type</th><th>Date</th><th>Client</th><th class="num">HT</th><th class="num">TTC</th><th>Fichier</th></tr></thead><tbody>`)
		for _, r := range data.Rows {
			h.raw("<tr><td>")
			h.text(r.Number)
			h.raw("</td><td>")
			h.text(r.Type)
			h.raw("</td><td>")
			h.text(r.Date)
			h.raw("</td><td>")
			h.text(r.ClientName)
			h.raw(`</td><td class="num">`)
			h.text(r.Subtotal)
			h.raw(`</td><td class="num">`)
			h.text(r.Total)
			h.raw("</td><td>")
			h.text(r.Filename)
			h.raw("</td></tr>")
		}
		h.raw(`</tbody><tfoot><tr><th colspan="5">Total TTC</th><th class="num">`)
		h.text(data.TotalAmount)
		h.raw(`</th><th></th></tr></tfoot></table>`)
		return h.err
	})
}
