package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"gardenquote/config"
	"gardenquote/store"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// dec parses a decimal literal, failing the test on bad input.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func decs(t *testing.T, ss ...string) []decimal.Decimal {
	t.Helper()
	out := make([]decimal.Decimal, len(ss))
	for i, s := range ss {
		out[i] = dec(t, s)
	}
	return out
}

// fixedNow is the clock used by test quoters.
var fixedNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

// newTestQuoter builds a Quoter over the default settings, an in-memory
// store and a fixed clock.
func newTestQuoter(t *testing.T) (*Quoter, *store.Memory) {
	t.Helper()
	return newTestQuoterWith(t, config.Default())
}

func newTestQuoterWith(t *testing.T, s config.Settings) (*Quoter, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	q, err := NewQuoter(s, st)
	if err != nil {
		t.Fatalf("NewQuoter() error = %v", err)
	}
	q.Now = func() time.Time { return fixedNow }
	return q, st
}

// fiveItemSettings is a reduced catalog of five services at 20 each with a
// fixed 21% rate.
func fiveItemSettings() config.Settings {
	s := config.Default()
	s.Catalog = []config.CatalogEntry{
		{Name: "Tonte", Price: "20", Unit: "h"},
		{Name: "Débroussaillage", Price: "20", Unit: "h"},
		{Name: "Taille de haies", Price: "20", Unit: "h"},
		{Name: "Élagage", Price: "20", Unit: "h"},
		{Name: "Entretien parterres", Price: "20", Unit: "h"},
	}
	s.Tax = config.Tax{Rates: []string{"21"}, Default: "21"}
	return s
}
