package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"

	"gardenquote/store"
	"gardenquote/testhelpers"
)

func TestHandleDocumentList_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	q := newTestQuoter(t, store.NewMemory())

	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	rec := httptest.NewRecorder()
	if err := HandleDocumentList(app, q)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Aucun document émis")
}

func TestHandleDocumentList_WithData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	q := newTestQuoter(t, store.NewMemory())
	testhelpers.CreateTestDocument(t, app, "2026-001", "devis", "Jean Dupont", 120)
	testhelpers.CreateTestDocument(t, app, "2026-002", "facture", "Mme Durand", 60)

	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	rec := httptest.NewRecorder()
	if err := HandleDocumentList(app, q)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"2026-001", "2026-002", "DEVIS", "FACTURE",
		"Jean Dupont", "Mme Durand",
		"120,00 €", "180,00 €",
		"/documents/export.xlsx",
	)
}

func TestHandleDocumentList_HTMXPartial(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	q := newTestQuoter(t, store.NewMemory())
	testhelpers.CreateTestDocument(t, app, "2026-001", "devis", "Jean Dupont", 120)

	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	rec := httptest.NewRecorder()
	if err := HandleDocumentList(app, q)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatal(err)
	}
	fullBody := rec.Body.String()

	req2 := httptest.NewRequest(http.MethodGet, "/documents", nil)
	req2.Header.Set("HX-Request", "true")
	rec2 := httptest.NewRecorder()
	if err := HandleDocumentList(app, q)(newTestRequestEvent(app, req2, rec2)); err != nil {
		t.Fatal(err)
	}
	partialBody := rec2.Body.String()

	if len(partialBody) >= len(fullBody) {
		t.Error("expected HTMX partial to be shorter than full page")
	}
	testhelpers.AssertHTMLNotContains(t, partialBody, "<html")
	testhelpers.AssertHTMLContains(t, partialBody, "2026-001")
}

func TestHandleDocumentExport(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	q := newTestQuoter(t, store.NewMemory())
	testhelpers.CreateTestDocument(t, app, "2026-001", "devis", "Jean Dupont", 120)

	req := httptest.NewRequest(http.MethodGet, "/documents/export.xlsx", nil)
	rec := httptest.NewRecorder()
	if err := HandleDocumentExport(app, q)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="registre_2026-03-15.xlsx"` {
		t.Errorf("Content-Disposition = %q", cd)
	}

	f, err := excelize.OpenReader(rec.Body)
	if err != nil {
		t.Fatalf("response is not a workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]
	if sheet != "Registre 2026" {
		t.Errorf("sheet = %q", sheet)
	}
	if got, _ := f.GetCellValue(sheet, "A5"); got != "2026-001" {
		t.Errorf("A5 = %q", got)
	}
	if got, _ := f.GetCellValue(sheet, "D5"); got != "Jean Dupont" {
		t.Errorf("D5 = %q", got)
	}
}

var errClientGone = errors.New("client went away")

// brokenWriter accepts headers but fails every body write.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) { return 0, errClientGone }

func TestDownloadHandlers_ReturnWriteError(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	q := newTestQuoter(t, store.NewMemory())

	tests := []struct {
		name    string
		path    string
		handler func(*core.RequestEvent) error
	}{
		{"ledger", "/documents/export.xlsx", HandleDocumentExport(app, q)},
		{"price list", "/tarifs.pdf", HandlePriceList(q)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &core.RequestEvent{}
			e.App = app
			e.Request = httptest.NewRequest(http.MethodGet, tt.path, nil)
			e.Response = brokenWriter{httptest.NewRecorder()}

			if err := tt.handler(e); !errors.Is(err, errClientGone) {
				t.Errorf("handler error = %v, want %v", err, errClientGone)
			}
		})
	}
}
