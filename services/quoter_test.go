package services

import (
	"strings"
	"testing"

	"gardenquote/config"
	"gardenquote/store"
)

func TestNewQuoter_Defaults(t *testing.T) {
	q, _ := newTestQuoter(t)

	if len(q.Catalog) != 12 {
		t.Errorf("Catalog = %d items, want 12", len(q.Catalog))
	}
	if !q.SurchargeRate.Equal(dec(t, "0.25")) {
		t.Errorf("SurchargeRate = %s", q.SurchargeRate)
	}
	if !q.DefaultTaxRate.Equal(dec(t, "20")) {
		t.Errorf("DefaultTaxRate = %s, want 20", q.DefaultTaxRate)
	}
	if len(q.TaxRates) != 3 {
		t.Errorf("TaxRates = %v", q.TaxRates)
	}
}

func TestNewQuoter_FixedRateVariant(t *testing.T) {
	q, _ := newTestQuoterWith(t, fiveItemSettings())
	if len(q.TaxRates) != 1 || !q.DefaultTaxRate.Equal(dec(t, "21")) {
		t.Errorf("TaxRates = %v, default %s", q.TaxRates, q.DefaultTaxRate)
	}
}

func TestNewQuoter_InvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Settings)
		errSub string
	}{
		{"bad price", func(s *config.Settings) { s.Catalog[0].Price = "vingt" }, "invalid price"},
		{"bad surcharge", func(s *config.Settings) { s.Surcharge.Rate = "x" }, "surcharge rate"},
		{"bad tax rate", func(s *config.Settings) { s.Tax.Rates = []string{"20", "?"} }, "tax rate"},
		{"no tax rate", func(s *config.Settings) { s.Tax.Rates = nil }, "no tax rate"},
		{"bad default", func(s *config.Settings) { s.Tax.Default = "abc" }, "default tax rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.Default()
			tt.mutate(&s)
			_, err := NewQuoter(s, store.NewMemory())
			if err == nil || !strings.Contains(err.Error(), tt.errSub) {
				t.Errorf("NewQuoter() error = %v, want containing %q", err, tt.errSub)
			}
		})
	}
}

func TestNewQuoter_UnknownDefaultFallsBackToFirstRate(t *testing.T) {
	s := config.Default()
	s.Tax.Default = "5.5"
	q, err := NewQuoter(s, store.NewMemory())
	if err != nil {
		t.Fatal(err)
	}
	if !q.DefaultTaxRate.Equal(dec(t, "0")) {
		t.Errorf("DefaultTaxRate = %s, want 0", q.DefaultTaxRate)
	}
}

func TestResolveTaxRate(t *testing.T) {
	q, _ := newTestQuoter(t)
	tests := []struct {
		in, want string
	}{
		{"0", "0"},
		{"10", "10"},
		{"20", "20"},
		{"20.0", "20"},
		{"21", "20"},
		{"-1", "20"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := q.ResolveTaxRate(dec(t, tt.in)); !got.Equal(dec(t, tt.want)) {
				t.Errorf("ResolveTaxRate(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuoter_TotalsUsesConfiguredSurcharge(t *testing.T) {
	q, _ := newTestQuoter(t)
	got := q.Totals(QuoteInput{TaxRatePercent: dec(t, "0"), Distance: dec(t, "100")})
	if !got.Total.Equal(dec(t, "25")) {
		t.Errorf("Total = %s, want 25", got.Total)
	}
}
