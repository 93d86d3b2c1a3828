package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// StateCollection is the PocketBase collection holding the key-value pairs.
const StateCollection = "app_state"

// PocketBase stores values as records of the app_state collection, which
// collections.Setup creates with a unique index on key.
type PocketBase struct {
	app core.App
}

func NewPocketBase(app core.App) *PocketBase {
	return &PocketBase{app: app}
}

func (s *PocketBase) Get(_ context.Context, key string) (string, bool, error) {
	rec, err := s.app.FindFirstRecordByData(StateCollection, "key", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("find %s: %w", key, err)
	}
	return rec.GetString("value"), true, nil
}

func (s *PocketBase) Set(_ context.Context, key, value string) error {
	rec, err := s.app.FindFirstRecordByData(StateCollection, "key", key)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("find %s: %w", key, err)
		}
		col, err := s.app.FindCollectionByNameOrId(StateCollection)
		if err != nil {
			return fmt.Errorf("collection %s: %w", StateCollection, err)
		}
		rec = core.NewRecord(col)
		rec.Set("key", key)
	}
	rec.Set("value", value)
	if err := s.app.Save(rec); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
