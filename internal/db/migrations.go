package db

import (
	"context"
	"database/sql"
	"fmt"
)

type step struct {
	version int
	name    string
	stmt    string
}

var steps = []step{
	{1, "kv_store", `CREATE TABLE IF NOT EXISTS kv_store (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`},
	{2, "kv_store_updated_at_index", `CREATE INDEX IF NOT EXISTS idx_kv_store_updated_at ON kv_store(updated_at)`},
}

// LatestVersion is the schema version Migrate brings a database to.
func LatestVersion() int {
	return steps[len(steps)-1].version
}

// SchemaVersion reports the highest applied step, 0 for a fresh file.
func SchemaVersion(ctx context.Context, conn *sql.DB) (int, error) {
	var v sql.NullInt64
	if err := conn.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return int(v.Int64), nil
}

// Migrate applies every step newer than the recorded schema version. Each
// step commits on its own so a failure leaves earlier steps in place.
func Migrate(ctx context.Context, conn *sql.DB) error {
	if _, err := conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	current, err := SchemaVersion(ctx, conn)
	if err != nil {
		return err
	}
	for _, s := range steps {
		if s.version <= current {
			continue
		}
		if err := applyStep(ctx, conn, s); err != nil {
			return err
		}
	}
	return nil
}

func applyStep(ctx context.Context, conn *sql.DB, s step) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("schema step %d: %w", s.version, err)
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, s.stmt); err != nil {
		return fmt.Errorf("schema step %d (%s): %w", s.version, s.name, err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, s.version, s.name); err != nil {
		return fmt.Errorf("record schema step %d: %w", s.version, err)
	}
	return tx.Commit()
}
