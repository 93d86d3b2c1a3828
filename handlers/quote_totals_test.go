package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"gardenquote/store"
	"gardenquote/testhelpers"
)

func TestHandleQuoteTotals(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	q := newTestQuoter(t, store.NewMemory())

	tests := []struct {
		name     string
		form     url.Values
		fragment []string
	}{
		{
			name:     "complete form",
			form:     completeForm(),
			fragment: []string{"42,00 €", "TVA (20%)", "8,40 €", "50,40 €"},
		},
		{
			name:     "empty form uses default rate",
			form:     url.Values{},
			fragment: []string{"0,00 €", "TVA (20%)"},
		},
		{
			name: "custom line with price but no quantity",
			form: url.Values{
				"taxRate":      {"0"},
				"custom_desc":  {"Divers"},
				"custom_price": {"40"},
				"custom_qty":   {""},
			},
			fragment: []string{"TVA (0%)", "0,00 €"},
		},
		{
			name: "lenient numbers",
			form: url.Values{
				"taxRate": {"10"},
				"qty_0":   {"1,5"},
				"qty_1":   {"deux"},
				"km":      {"-3"},
			},
			fragment: []string{"30,00 €", "3,00 €", "33,00 €"},
		},
		{
			name: "exponent numbers read as zero",
			form: url.Values{
				"taxRate":      {"20"},
				"qty_0":        {"1e400000000"},
				"km":           {"1e9"},
				"custom_desc":  {"Divers"},
				"custom_price": {"2e3"},
				"custom_qty":   {"1"},
			},
			fragment: []string{"TVA (20%)", "0,00 €"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, postForm("/quote/totals", tt.form), rec)
			if err := HandleQuoteTotals(q)(e); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", rec.Code)
			}
			body := rec.Body.String()
			testhelpers.AssertHTMLContains(t, body, `id="totals"`)
			testhelpers.AssertHTMLContains(t, body, tt.fragment...)
			testhelpers.AssertHTMLNotContains(t, body, "<html")
		})
	}
}

func TestHandleCustomLine(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/quote/custom-line", nil)
	rec := httptest.NewRecorder()
	if err := HandleCustomLine()(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `name="custom_desc"`, `name="custom_price"`, `name="custom_qty"`)
}
