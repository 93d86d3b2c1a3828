package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"gardenquote/store"
	"gardenquote/testhelpers"
)

func TestHandlePriceList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	q := newTestQuoter(t, store.NewMemory())

	req := httptest.NewRequest(http.MethodGet, "/tarifs.pdf", nil)
	rec := httptest.NewRecorder()
	if err := HandlePriceList(q)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("body is not a PDF")
	}
}
