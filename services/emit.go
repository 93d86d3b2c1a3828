package services

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrMissingClient is returned when the client name or address is empty.
// Nothing is numbered or rendered in that case.
var ErrMissingClient = errors.New("informations client manquantes")

// Artifact is a generated document ready to download.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
	Document    QuoteDocument
}

// ValidateClient checks the client fields required on every document.
func ValidateClient(in QuoteInput) error {
	in = in.normalized()
	err := validation.ValidateStruct(&in,
		validation.Field(&in.ClientName, validation.Required.Error("le nom du client est obligatoire")),
		validation.Field(&in.ClientAddress, validation.Required.Error("l'adresse du client est obligatoire")),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingClient, err)
	}
	return nil
}

// Emit validates in, takes the next number of the current year and renders
// the PDF. The number stays consumed even if rendering fails afterwards.
func (q *Quoter) Emit(ctx context.Context, in QuoteInput) (Artifact, error) {
	if err := ValidateClient(in); err != nil {
		return Artifact{}, err
	}

	now := q.Now()
	number, err := q.Numbers.Next(ctx, now.Year())
	if err != nil {
		return Artifact{}, fmt.Errorf("number document: %w", err)
	}

	doc := q.BuildDocument(in, number, now)
	data, err := GenerateDocumentPDF(doc, q.Business)
	if err != nil {
		return Artifact{}, fmt.Errorf("render %s %s: %w", doc.Type, number, err)
	}

	return Artifact{
		Filename:    doc.Filename("pdf"),
		ContentType: "application/pdf",
		Data:        data,
		Document:    doc,
	}, nil
}
