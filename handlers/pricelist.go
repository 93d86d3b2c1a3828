package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"gardenquote/services"
)

// HandlePriceList serves the catalog tariff sheet inline.
func HandlePriceList(q *services.Quoter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pdfBytes, err := services.GeneratePriceListPDF(q.PriceListData())
		if err != nil {
			log.Printf("pricelist: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Échec de la génération des tarifs")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", `inline; filename="tarifs.pdf"`)
		_, err = e.Response.Write(pdfBytes)
		return err
	}
}
