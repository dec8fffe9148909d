package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mindmeal/mindmeal-cli/internal/db"
)

func TestMigrateIsRepeatable(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, filepath.Join(t.TempDir(), "mindmeal.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := db.Migrate(ctx, conn); err != nil {
			t.Fatalf("migrate run %d: %v", i+1, err)
		}
	}
	v, err := db.SchemaVersion(ctx, conn)
	if err != nil {
		t.Fatalf("schema version: %v", err)
	}
	if v != db.LatestVersion() {
		t.Fatalf("schema version = %d, want %d", v, db.LatestVersion())
	}

	var rows int
	if err := conn.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&rows); err != nil {
		t.Fatalf("count steps: %v", err)
	}
	if rows != db.LatestVersion() {
		t.Fatalf("expected one row per step, got %d", rows)
	}

	if _, err := conn.Exec(`INSERT INTO kv_store(key, value) VALUES('mindmeal_user', '{}')`); err != nil {
		t.Fatalf("kv_store not usable: %v", err)
	}
	var idx int
	if err := conn.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'index' AND name = 'idx_kv_store_updated_at'`).Scan(&idx); err != nil || idx != 1 {
		t.Fatalf("expected updated_at index, got %d (%v)", idx, err)
	}
}
