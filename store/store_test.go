package store_test

import (
	"context"
	"os"
	"testing"

	"gardenquote/store"
	"gardenquote/testhelpers"
)

// exerciseStore runs the same contract checks against any Store.
func exerciseStore(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()

	if _, found, err := s.Get(ctx, "absent"); err != nil || found {
		t.Fatalf("Get(absent) = found %v, err %v; want not found, nil", found, err)
	}

	if err := s.Set(ctx, "chrisgarden_num_2026", "1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, found, err := s.Get(ctx, "chrisgarden_num_2026")
	if err != nil || !found || got != "1" {
		t.Fatalf("Get() = %q, %v, %v; want \"1\", true, nil", got, found, err)
	}

	if err := s.Set(ctx, "chrisgarden_num_2026", "2"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	got, _, _ = s.Get(ctx, "chrisgarden_num_2026")
	if got != "2" {
		t.Errorf("Get() after overwrite = %q, want \"2\"", got)
	}

	if err := s.Set(ctx, "empty", ""); err != nil {
		t.Fatalf("Set(empty) error = %v", err)
	}
	got, found, _ = s.Get(ctx, "empty")
	if !found || got != "" {
		t.Errorf("Get(empty) = %q, %v; want \"\", true", got, found)
	}
}

func TestMemory(t *testing.T) {
	exerciseStore(t, store.NewMemory())
}

func TestPocketBase(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	exerciseStore(t, store.NewPocketBase(app))
}

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("GARDEN_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("GARDEN_TEST_DATABASE_URL not set")
	}
	if err := store.Migrate(dsn); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	pg, err := store.NewPostgres(context.Background(), dsn)
	if err != nil {
		t.Fatalf("NewPostgres() error = %v", err)
	}
	defer pg.Close()

	ctx := context.Background()
	if _, err := pg.Pool.Exec(ctx, `DELETE FROM app_state`); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	exerciseStore(t, pg)
}
