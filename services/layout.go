package services

import (
	"fmt"

	"gardenquote/config"
)

// Canvas receives the layout commands of a document. Coordinates are in
// millimetres from the top-left corner of an A4 page; the implementation
// owns pagination and encoding.
type Canvas interface {
	SetFillColor(r, g, b int)
	// Rect draws a filled rectangle in the current fill color.
	Rect(x, y, w, h float64)
	SetFontSize(size float64)
	SetTextColor(r, g, b int)
	Text(x, y float64, s string)
}

// Page geometry, in millimetres.
const (
	pageWidth    = 210.0
	bandHeight   = 15.0
	marginLeft   = 10.0
	bodyTop      = 25.0
	clientRow    = 6.0
	sectionGap   = 10.0
	rowHeight    = 5.0
	colQtyX      = 100.0
	colPriceX    = 130.0
	colTotalX    = 160.0
	headerNumber = 150.0
)

// LayoutDocument draws doc on c and returns the final cursor position.
func LayoutDocument(c Canvas, doc QuoteDocument, biz config.Business) float64 {
	// header band
	c.SetFillColor(biz.BandColor[0], biz.BandColor[1], biz.BandColor[2])
	c.Rect(0, 0, pageWidth, bandHeight)
	c.SetFontSize(18)
	c.SetTextColor(255, 255, 255)
	c.Text(marginLeft, 11, biz.Name)
	c.SetFontSize(9)
	c.Text(headerNumber, 11, fmt.Sprintf("%s n°%s", doc.Type.Label(), doc.Number))
	c.SetTextColor(0, 0, 0)

	// client block
	y := bodyTop
	c.SetFontSize(12)
	c.Text(marginLeft, y, "Client : "+doc.ClientName)
	y += clientRow
	c.Text(marginLeft, y, "Adresse : "+doc.ClientAddress)
	y += clientRow
	if doc.ClientPhone != "" {
		c.Text(marginLeft, y, "Téléphone : "+doc.ClientPhone)
		y += clientRow
	}
	c.Text(marginLeft, y, "Date : "+doc.Date.Format("02/01/2006"))
	y += sectionGap

	// line table
	c.SetFontSize(10)
	c.Text(marginLeft, y, "Description")
	c.Text(colQtyX, y, "Qté")
	c.Text(colPriceX, y, "Prix")
	c.Text(colTotalX, y, "Total")
	y += rowHeight
	for _, l := range doc.Lines {
		c.Text(marginLeft, y, l.Description)
		c.Text(colQtyX, y, FormatQty(l.Quantity))
		c.Text(colPriceX, y, FormatEUR(l.UnitPrice))
		c.Text(colTotalX, y, FormatEUR(l.Extension()))
		y += rowHeight
	}

	// totals
	y += rowHeight
	c.Text(marginLeft, y, "Sous-total : "+FormatEUR(doc.Totals.Subtotal))
	y += rowHeight
	c.Text(marginLeft, y, fmt.Sprintf("TVA (%s%%) : %s", FormatRate(doc.TaxRatePercent), FormatEUR(doc.Totals.TaxAmount)))
	y += rowHeight
	c.Text(marginLeft, y, "TOTAL TTC : "+FormatEUR(doc.Totals.Total))
	y += sectionGap

	c.Text(marginLeft, y, "Signature : "+biz.Signature)
	return y
}
