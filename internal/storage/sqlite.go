package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mindmeal/mindmeal-cli/internal/db"
)

type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens path and migrates it to the latest schema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	sqldb, err := db.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx, sqldb); err != nil {
		_ = sqldb.Close()
		return nil, err
	}
	return &SQLiteStore{db: sqldb}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false, fmt.Errorf("storage key is required")
	}
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("storage key is required")
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO kv_store(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, string(value))
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, strings.TrimSpace(key)); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
