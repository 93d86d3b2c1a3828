package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"gardenquote/metrics"
	"gardenquote/services"
)

// HandleDraftSave stores the client fields, type, tax rate and distance.
func HandleDraftSave(q *services.Quoter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		in, err := parseQuoteInput(e.Request, q)
		if err != nil {
			log.Printf("draft: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Formulaire invalide.")
		}

		if err := q.SaveDraft(e.Request.Context(), services.DraftFromInput(in)); err != nil {
			log.Printf("draft: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Impossible d'enregistrer le brouillon.")
		}

		metrics.DraftSaved()
		SetToast(e, ToastSuccess, "Brouillon enregistré.")
		return e.NoContent(http.StatusNoContent)
	}
}
