package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gardenquote/config"
	"gardenquote/services"
	"gardenquote/store"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

var testNow = time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)

// newTestQuoter returns a Quoter on the default settings backed by st.
func newTestQuoter(t *testing.T, st store.Store) *services.Quoter {
	t.Helper()
	q, err := services.NewQuoter(config.Default(), st)
	if err != nil {
		t.Fatalf("NewQuoter() error = %v", err)
	}
	q.Now = func() time.Time { return testNow }
	return q
}

// postForm builds an urlencoded POST request.
func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// completeForm is a valid quote for Jean Dupont: 2 h of mowing, 8 km.
func completeForm() url.Values {
	return url.Values{
		"type":    {"devis"},
		"taxRate": {"20"},
		"nom":     {"Jean Dupont"},
		"adresse": {"4 chemin du Moulin"},
		"tel":     {"06 11 22 33 44"},
		"km":      {"8"},
		"qty_0":   {"2"},
	}
}
