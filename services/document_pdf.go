package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"gardenquote/config"
)

const (
	// pageBreakY is the lowest baseline written on a page before breaking.
	pageBreakY = 280.0
	// continuationTop is where text resumes on a continuation page.
	continuationTop = 20.0
)

// pdfCanvas draws layout commands with gofpdf core fonts. Text is converted
// from UTF-8 to cp1252 so accents and the euro sign print correctly.
type pdfCanvas struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	offset float64
}

func newPDFCanvas(pdf *gofpdf.Fpdf) *pdfCanvas {
	return &pdfCanvas{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (c *pdfCanvas) SetFillColor(r, g, b int) { c.pdf.SetFillColor(r, g, b) }

func (c *pdfCanvas) Rect(x, y, w, h float64) { c.pdf.Rect(x, y-c.offset, w, h, "F") }

func (c *pdfCanvas) SetFontSize(size float64) { c.pdf.SetFontSize(size) }

func (c *pdfCanvas) SetTextColor(r, g, b int) { c.pdf.SetTextColor(r, g, b) }

// Text starts a new page when y falls below the printable area; later
// coordinates are shifted by the same amount.
func (c *pdfCanvas) Text(x, y float64, s string) {
	if y-c.offset > pageBreakY {
		c.pdf.AddPage()
		c.offset = y - continuationTop
	}
	c.pdf.Text(x, y-c.offset, c.tr(s))
}

// GenerateDocumentPDF renders doc as an A4 PDF and returns its bytes.
func GenerateDocumentPDF(doc QuoteDocument, biz config.Business) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s %s", doc.Type.Label(), doc.Number), true)
	pdf.SetAuthor(biz.Name, true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)

	LayoutDocument(newPDFCanvas(pdf), doc, biz)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to lay out PDF: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
