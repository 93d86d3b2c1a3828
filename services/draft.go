package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
)

// Draft is the last saved form state. Totals are not saved: they are
// recomputed when the draft is loaded.
type Draft struct {
	Type           DocumentType    `json:"type"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	ClientName     string          `json:"nom"`
	ClientAddress  string          `json:"adresse"`
	ClientPhone    string          `json:"tel"`
	Distance       decimal.Decimal `json:"km"`
}

// DraftFromInput keeps the fields of in that a draft remembers.
func DraftFromInput(in QuoteInput) Draft {
	in = in.normalized()
	return Draft{
		Type:           in.Type,
		TaxRatePercent: in.TaxRatePercent,
		ClientName:     in.ClientName,
		ClientAddress:  in.ClientAddress,
		ClientPhone:    in.ClientPhone,
		Distance:       in.Distance,
	}
}

func (q *Quoter) SaveDraft(ctx context.Context, d Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := q.Store.Set(ctx, q.draftKey(), string(data)); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// LoadDraft returns the saved draft. Any failure to read or decode it is
// reported as "no draft" so the form stays at its defaults.
func (q *Quoter) LoadDraft(ctx context.Context) (Draft, bool) {
	raw, found, err := q.Store.Get(ctx, q.draftKey())
	if err != nil {
		log.Printf("draft: read failed: %v", err)
		return Draft{}, false
	}
	if !found || raw == "" {
		return Draft{}, false
	}

	var d Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		log.Printf("draft: ignoring unreadable draft: %v", err)
		return Draft{}, false
	}
	return d, true
}
