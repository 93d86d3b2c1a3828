package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PriceListData holds everything printed on the tariff sheet.
type PriceListData struct {
	BusinessName   string
	BandColor      [3]int
	Items          []CatalogItem
	SurchargeLabel string
	SurchargeRate  string
	TaxRates       []string
	IssuedDate     string
}

// PriceListData returns the tariff sheet content for the configured catalog.
func (q *Quoter) PriceListData() PriceListData {
	rates := make([]string, 0, len(q.TaxRates))
	for _, r := range q.TaxRates {
		rates = append(rates, FormatRate(r)+" %")
	}
	return PriceListData{
		BusinessName:   q.Business.Name,
		BandColor:      q.Business.BandColor,
		Items:          q.Catalog,
		SurchargeLabel: q.SurchargeLabel,
		SurchargeRate:  FormatEUR(q.SurchargeRate) + " / km",
		TaxRates:       rates,
		IssuedDate:     q.Now().Format("02/01/2006"),
	}
}

// GeneratePriceListPDF creates the catalog tariff sheet using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePriceListPDF(data PriceListData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} / {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addPriceListHeader(m, data)
	addPriceListTableHeader(m)
	for i, item := range data.Items {
		addPriceListRow(m, item, i%2 == 1)
	}
	addPriceListFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate price list PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addPriceListHeader adds the business band and the sheet title.
func addPriceListHeader(m core.Maroto, data PriceListData) {
	band := &props.Cell{BackgroundColor: &props.Color{
		Red: data.BandColor[0], Green: data.BandColor[1], Blue: data.BandColor[2],
	}}
	white := &props.Color{Red: 255, Green: 255, Blue: 255}

	m.AddRows(
		row.New(14).Add(
			col.New(8).Add(
				text.New(data.BusinessName, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: white,
					Top:   3,
					Left:  3,
				}),
			).WithStyle(band),
			col.New(4).Add(
				text.New("TARIFS "+data.IssuedDate, props.Text{
					Size:  9,
					Align: align.Right,
					Color: white,
					Top:   5,
					Right: 3,
				}),
			).WithStyle(band),
		),
	)

	m.AddRows(row.New(6))
}

// addPriceListTableHeader adds the column header row.
func addPriceListTableHeader(m core.Maroto) {
	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
	headerText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
		Left:  2,
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right
	headerTextRight.Right = 2

	m.AddRows(
		row.New(8).Add(
			col.New(7).Add(text.New("Prestation", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unité", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Prix HT", headerTextRight)).WithStyle(&headerCell),
		),
	)
}

// addPriceListRow adds one catalog item, shading every other row.
func addPriceListRow(m core.Maroto, item CatalogItem, shaded bool) {
	left := props.Text{Size: 9, Align: align.Left, Left: 2}
	right := props.Text{Size: 9, Align: align.Right, Right: 2}

	cName := col.New(7).Add(text.New(item.Name, left))
	cUnit := col.New(2).Add(text.New(item.Unit, left))
	cPrice := col.New(3).Add(text.New(FormatEUR(item.UnitPrice), right))

	if shaded {
		style := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
		cName = cName.WithStyle(style)
		cUnit = cUnit.WithStyle(style)
		cPrice = cPrice.WithStyle(style)
	}

	m.AddRows(row.New(7).Add(cName, cUnit, cPrice))
}

// addPriceListFooter adds the travel fee and the applicable tax rates.
func addPriceListFooter(m core.Maroto, data PriceListData) {
	m.AddRows(row.New(6))

	note := props.Text{
		Size:  8,
		Align: align.Left,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	if data.SurchargeLabel != "" {
		m.AddRows(row.New(6).Add(
			col.New(12).Add(text.New(fmt.Sprintf("%s : %s", data.SurchargeLabel, data.SurchargeRate), note)),
		))
	}
	if len(data.TaxRates) > 0 {
		m.AddRows(row.New(6).Add(
			col.New(12).Add(text.New("TVA applicable : "+strings.Join(data.TaxRates, ", "), note)),
		))
	}
}
