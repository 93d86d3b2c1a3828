// Package metrics exposes counters about issued documents on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	documentsIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gardenquote",
		Name:      "documents_issued_total",
		Help:      "Documents numbered and rendered, by type.",
	}, []string{"type"})

	emissionsRefused = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gardenquote",
		Name:      "emissions_refused_total",
		Help:      "Document requests refused before numbering, by reason.",
	}, []string{"reason"})

	draftsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gardenquote",
		Name:      "drafts_saved_total",
		Help:      "Drafts written to the store.",
	})
)

// Refusal reasons.
const (
	ReasonMissingClient = "missing_client"
	ReasonRenderFailed  = "render_failed"
)

func DocumentIssued(docType string) {
	documentsIssued.WithLabelValues(docType).Inc()
}

func EmissionRefused(reason string) {
	emissionsRefused.WithLabelValues(reason).Inc()
}

func DraftSaved() {
	draftsSaved.Inc()
}
