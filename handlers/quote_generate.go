package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gardenquote/metrics"
	"gardenquote/services"
)

// HandleQuoteGenerate numbers and renders the document, records it in the
// register and sends it as an attachment. Missing client fields are refused
// before a number is taken.
func HandleQuoteGenerate(app *pocketbase.PocketBase, q *services.Quoter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		in, err := parseQuoteInput(e.Request, q)
		if err != nil {
			log.Printf("quote_generate: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Formulaire invalide.")
		}

		art, err := q.Emit(e.Request.Context(), in)
		if errors.Is(err, services.ErrMissingClient) {
			metrics.EmissionRefused(metrics.ReasonMissingClient)
			return ErrorToast(e, http.StatusUnprocessableEntity, "Veuillez remplir les informations client.")
		}
		if err != nil {
			log.Printf("quote_generate: %v", err)
			metrics.EmissionRefused(metrics.ReasonRenderFailed)
			return ErrorToast(e, http.StatusInternalServerError, "La génération du document a échoué.")
		}

		doc := art.Document
		if err := services.RecordDocument(app, doc, art.Filename); err != nil {
			// The PDF is still delivered; the register is informative only.
			log.Printf("quote_generate: could not record %s: %v", doc.Number, err)
		}
		metrics.DocumentIssued(string(doc.Type))
		log.Printf("quote_generate: issued %s %s for %q", doc.Type, doc.Number, doc.ClientName)

		SetToast(e, ToastSuccess, fmt.Sprintf("%s n°%s généré.", doc.Type.Label(), doc.Number))
		e.Response.Header().Set("Content-Type", art.ContentType)
		e.Response.Header().Set("Content-Disposition", attachmentDisposition(art.Filename))
		e.Response.Header().Set("Content-Length", strconv.Itoa(len(art.Data)))
		e.Response.WriteHeader(http.StatusOK)
		_, err = e.Response.Write(art.Data)
		return err
	}
}

// attachmentDisposition quotes or RFC 2231-encodes filename as needed.
func attachmentDisposition(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return `attachment; filename="document.pdf"`
}
