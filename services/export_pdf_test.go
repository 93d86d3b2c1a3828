package services

import (
	"testing"
)

func TestPriceListData(t *testing.T) {
	q, _ := newTestQuoter(t)
	data := q.PriceListData()

	if data.BusinessName != "ChrisGarden" {
		t.Errorf("BusinessName = %q", data.BusinessName)
	}
	if len(data.Items) != 12 {
		t.Errorf("Items = %d, want 12", len(data.Items))
	}
	if data.SurchargeRate != "0,25 € / km" {
		t.Errorf("SurchargeRate = %q", data.SurchargeRate)
	}
	if len(data.TaxRates) != 3 || data.TaxRates[2] != "20 %" {
		t.Errorf("TaxRates = %v", data.TaxRates)
	}
	if data.IssuedDate != "15/03/2026" {
		t.Errorf("IssuedDate = %q", data.IssuedDate)
	}
}

func TestGeneratePriceListPDF_Default(t *testing.T) {
	q, _ := newTestQuoter(t)

	result, err := GeneratePriceListPDF(q.PriceListData())
	if err != nil {
		t.Fatalf("GeneratePriceListPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePriceListPDF() returned empty bytes")
	}
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGeneratePriceListPDF_EmptyCatalog(t *testing.T) {
	result, err := GeneratePriceListPDF(PriceListData{
		BusinessName: "Empty",
		IssuedDate:   "01/01/2026",
	})
	if err != nil {
		t.Fatalf("GeneratePriceListPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePriceListPDF() returned empty bytes")
	}
}
