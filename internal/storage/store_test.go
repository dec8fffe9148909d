package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mindmeal/mindmeal-cli/internal/config"
	"github.com/mindmeal/mindmeal-cli/internal/storage"
)

func exerciseStore(t *testing.T, s storage.Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, storage.KeyProfile); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, storage.KeyProfile, []byte(`{"age":30}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, storage.KeyProfile, []byte(`{"age":31}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	raw, ok, err := s.Get(ctx, storage.KeyProfile)
	if err != nil || !ok || string(raw) != `{"age":31}` {
		t.Fatalf("expected last write to win, got %q ok=%v err=%v", raw, ok, err)
	}
	if err := s.Remove(ctx, storage.KeyProfile); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.Remove(ctx, storage.KeyProfile); err != nil {
		t.Fatalf("remove of missing key should not fail: %v", err)
	}
	if _, ok, _ := s.Get(ctx, storage.KeyProfile); ok {
		t.Fatalf("expected key to be gone")
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, storage.NewMemoryStore())
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "mindmeal.db")
	s, err := storage.Open(context.Background(), config.StoreConfig{Driver: "sqlite", SQLitePath: path})
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	exerciseStore(t, s)
	if err := s.Set(context.Background(), storage.KeyOnboardingComplete, []byte("true")); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := storage.OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	raw, ok, err := reopened.Get(context.Background(), storage.KeyOnboardingComplete)
	if err != nil || !ok || string(raw) != "true" {
		t.Fatalf("expected persisted flag, got %q ok=%v err=%v", raw, ok, err)
	}
}

func TestLoadJSONDegradesOnCorruptValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := storage.NewMemoryStore()
	_ = s.Set(ctx, storage.KeyFoodLogs, []byte("{not json"))

	var logs []map[string]any
	if storage.LoadJSON(ctx, s, storage.KeyFoodLogs, &logs) {
		t.Fatalf("expected corrupt value to load as missing")
	}
	if err := storage.SaveJSON(ctx, s, storage.KeyFoodLogs, []map[string]any{{"id": "a"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !storage.LoadJSON(ctx, s, storage.KeyFoodLogs, &logs) || len(logs) != 1 {
		t.Fatalf("expected one stored log, got %v", logs)
	}
	if err := storage.RemoveAll(ctx, s, storage.AllKeys); err != nil {
		t.Fatalf("remove all: %v", err)
	}
	if _, ok, _ := s.Get(ctx, storage.KeyFoodLogs); ok {
		t.Fatalf("expected food logs removed")
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	t.Parallel()
	if _, err := storage.Open(context.Background(), config.StoreConfig{Driver: "mongo"}); err == nil {
		t.Fatalf("expected unknown driver to fail")
	}
}
