package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType is either a quote (devis) or an invoice (facture). The value
// is printed in the header and used in filenames.
type DocumentType string

const (
	DocQuote   DocumentType = "devis"
	DocInvoice DocumentType = "facture"
)

// ParseDocumentType falls back to a quote for unknown values.
func ParseDocumentType(s string) DocumentType {
	switch DocumentType(strings.ToLower(strings.TrimSpace(s))) {
	case DocInvoice:
		return DocInvoice
	default:
		return DocQuote
	}
}

func (t DocumentType) Label() string {
	return strings.ToUpper(string(t))
}

// QuoteInput is the form state of one request, built once and passed down.
// CatalogQuantities is indexed like the catalog.
type QuoteInput struct {
	Type              DocumentType
	TaxRatePercent    decimal.Decimal
	ClientName        string
	ClientAddress     string
	ClientPhone       string
	Distance          decimal.Decimal
	CatalogQuantities []decimal.Decimal
	CustomLines       []LineEntry
}

func (in QuoteInput) normalized() QuoteInput {
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientAddress = strings.TrimSpace(in.ClientAddress)
	in.ClientPhone = strings.TrimSpace(in.ClientPhone)
	in.Distance = nonNegative(in.Distance)
	return in
}

// QuoteDocument is what gets printed: only the lines that carry a value.
type QuoteDocument struct {
	Type           DocumentType
	Number         string
	Date           time.Time
	TaxRatePercent decimal.Decimal
	ClientName     string
	ClientAddress  string
	ClientPhone    string
	Distance       decimal.Decimal
	Lines          []LineEntry
	Totals         Totals
}

// BuildDocument keeps catalog lines with a positive quantity, then custom
// lines whose description, price and quantity are all filled in, then the
// surcharge line when a distance was entered. Totals are the sum of the
// printed lines so the table always adds up.
func (q *Quoter) BuildDocument(in QuoteInput, number string, date time.Time) QuoteDocument {
	in = in.normalized()
	doc := QuoteDocument{
		Type:           in.Type,
		Number:         number,
		Date:           date,
		TaxRatePercent: in.TaxRatePercent,
		ClientName:     in.ClientName,
		ClientAddress:  in.ClientAddress,
		ClientPhone:    in.ClientPhone,
		Distance:       in.Distance,
	}

	for i, item := range q.Catalog {
		if i >= len(in.CatalogQuantities) {
			break
		}
		qty := nonNegative(in.CatalogQuantities[i])
		if !qty.IsPositive() {
			continue
		}
		doc.Lines = append(doc.Lines, LineEntry{
			Description: item.Name,
			UnitPrice:   item.UnitPrice,
			Quantity:    qty,
		})
	}

	for _, l := range in.CustomLines {
		desc := strings.TrimSpace(l.Description)
		price := nonNegative(l.UnitPrice)
		qty := nonNegative(l.Quantity)
		if desc == "" || price.IsZero() || qty.IsZero() {
			continue
		}
		doc.Lines = append(doc.Lines, LineEntry{Description: desc, UnitPrice: price, Quantity: qty})
	}

	if in.Distance.IsPositive() {
		doc.Lines = append(doc.Lines, LineEntry{
			Description: q.SurchargeLabel,
			UnitPrice:   q.SurchargeRate,
			Quantity:    in.Distance,
		})
	}

	doc.Totals = CalcTotals(SumLines(doc.Lines), doc.TaxRatePercent)
	return doc
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename returns {type}_{number}_{client}.{ext}, whitespace runs in the
// client name collapsed to underscores.
func (d QuoteDocument) Filename(ext string) string {
	client := whitespaceRun.ReplaceAllString(d.ClientName, "_")
	return fmt.Sprintf("%s_%s_%s.%s", d.Type, d.Number, client, ext)
}
