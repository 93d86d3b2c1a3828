package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"gardenquote/config"
	"gardenquote/store"
)

// Quoter ties the configured catalog, surcharge and tax rates to the
// key-value store holding the draft and the document counters.
type Quoter struct {
	Business       config.Business
	Catalog        []CatalogItem
	SurchargeLabel string
	SurchargeRate  decimal.Decimal
	TaxRates       []decimal.Decimal
	DefaultTaxRate decimal.Decimal

	Store   store.Store
	Numbers *Numberer
	// Now is the clock used for document dates and the numbering year.
	Now func() time.Time

	keyPrefix string
}

// NewQuoter converts the textual settings into decimals. Unlike form input,
// an invalid price in the settings is an error.
func NewQuoter(s config.Settings, st store.Store) (*Quoter, error) {
	q := &Quoter{
		Business:       s.Business,
		SurchargeLabel: s.Surcharge.Label,
		Store:          st,
		Now:            time.Now,
		keyPrefix:      s.Storage.KeyPrefix,
	}
	q.Numbers = &Numberer{Store: st, Prefix: s.Storage.KeyPrefix}

	for i, e := range s.Catalog {
		price, err := decimal.NewFromString(e.Price)
		if err != nil {
			return nil, fmt.Errorf("catalog item %d (%s): invalid price %q: %w", i, e.Name, e.Price, err)
		}
		q.Catalog = append(q.Catalog, CatalogItem{Name: e.Name, UnitPrice: price, Unit: e.Unit})
	}

	rate, err := decimal.NewFromString(s.Surcharge.Rate)
	if err != nil {
		return nil, fmt.Errorf("surcharge rate %q: %w", s.Surcharge.Rate, err)
	}
	q.SurchargeRate = rate

	for _, r := range s.Tax.Rates {
		d, err := decimal.NewFromString(r)
		if err != nil {
			return nil, fmt.Errorf("tax rate %q: %w", r, err)
		}
		q.TaxRates = append(q.TaxRates, d)
	}
	if len(q.TaxRates) == 0 {
		return nil, fmt.Errorf("no tax rate configured")
	}

	q.DefaultTaxRate = q.TaxRates[0]
	if s.Tax.Default != "" {
		def, err := decimal.NewFromString(s.Tax.Default)
		if err != nil {
			return nil, fmt.Errorf("default tax rate %q: %w", s.Tax.Default, err)
		}
		q.DefaultTaxRate = q.ResolveTaxRate(def)
	}
	return q, nil
}

// ResolveTaxRate returns rate when it is one of the offered rates, the
// default rate otherwise.
func (q *Quoter) ResolveTaxRate(rate decimal.Decimal) decimal.Decimal {
	for _, r := range q.TaxRates {
		if r.Equal(rate) {
			return r
		}
	}
	return q.DefaultTaxRate
}

// Totals computes the live totals for the current form input.
func (q *Quoter) Totals(in QuoteInput) Totals {
	return ComputeTotals(
		q.Catalog,
		in.CatalogQuantities,
		in.CustomLines,
		Surcharge{Distance: in.Distance, Rate: q.SurchargeRate},
		in.TaxRatePercent,
	)
}

func (q *Quoter) draftKey() string {
	return q.keyPrefix + "_draft"
}
