package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gardenquote/services"
	"gardenquote/templates"
)

// HandleDocumentList renders the register of issued documents.
func HandleDocumentList(app *pocketbase.PocketBase, q *services.Quoter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rows, err := services.ListDocuments(app)
		if err != nil {
			log.Printf("documents: %v", err)
			rows = nil
		}

		ledger := services.NewLedgerData("", "", rows)
		data := templates.DocumentsData{
			BusinessName: q.Business.Name,
			TotalAmount:  services.FormatEUR(ledger.TotalAmount),
		}
		for _, r := range rows {
			data.Rows = append(data.Rows, templates.DocumentRow{
				Number:     r.Number,
				Type:       r.Type.Label(),
				Date:       r.Date,
				ClientName: r.ClientName,
				Subtotal:   services.FormatEUR(r.Subtotal),
				Total:      services.FormatEUR(r.Total),
				Filename:   r.Filename,
			})
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.DocumentsContent(data)
		} else {
			component = templates.DocumentsPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleDocumentExport downloads the register as an Excel workbook.
func HandleDocumentExport(app *pocketbase.PocketBase, q *services.Quoter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rows, err := services.ListDocuments(app)
		if err != nil {
			log.Printf("documents_export: %v", err)
			return e.String(http.StatusInternalServerError, "Impossible de lire le registre")
		}

		now := q.Now()
		data := services.NewLedgerData(
			fmt.Sprintf("Registre %d", now.Year()),
			now.Format("02/01/2006"),
			rows,
		)

		xlsxBytes, err := services.GenerateLedgerExcel(data)
		if err != nil {
			log.Printf("documents_export: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Échec de la génération du fichier Excel")
		}

		filename := fmt.Sprintf("registre_%s.xlsx", now.Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		_, err = e.Response.Write(xlsxBytes)
		return err
	}
}
