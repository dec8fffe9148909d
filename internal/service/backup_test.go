package service_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/service"
	"github.com/mindmeal/mindmeal-cli/internal/storage"
)

func TestBackupAndRestore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "mindmeal.db")

	store, err := storage.OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	app, _ := newTestApp(t, store)
	if _, err := app.FoodLogs.Add(ctx, mustFood(t, "idli"), model.MealBreakfast, 2); err != nil {
		t.Fatalf("add log: %v", err)
	}

	// The store stays open so the write may still live in the WAL.
	backupPath := filepath.Join(dir, "backups", "mindmeal-backup.db")
	info, err := service.CreateBackup(ctx, dbPath, backupPath)
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if info.Checksum == "" || info.SizeBytes == 0 {
		t.Fatalf("unexpected backup info %+v", info)
	}
	if _, err := service.CreateBackup(ctx, dbPath, backupPath); err == nil {
		t.Fatalf("expected existing backup path to be refused")
	}
	sidecar, err := os.ReadFile(backupPath + ".sha256")
	if err != nil || !strings.HasSuffix(strings.TrimSpace(string(sidecar)), "mindmeal-backup.db") {
		t.Fatalf("expected sha256sum-style sidecar, got %q err=%v", sidecar, err)
	}
	listed, err := service.ListBackups(filepath.Dir(backupPath))
	if err != nil || len(listed) != 1 || listed[0].Checksum != info.Checksum {
		t.Fatalf("expected listed backup, got %+v err=%v", listed, err)
	}

	if err := service.RestoreBackup(ctx, backupPath, dbPath, false); err == nil || !strings.Contains(err.Error(), "--force") {
		t.Fatalf("expected restore without force to refuse, got %v", err)
	}
	restored := filepath.Join(dir, "restored", "mindmeal.db")
	if err := service.RestoreBackup(ctx, backupPath, restored, false); err != nil {
		t.Fatalf("restore: %v", err)
	}
	reopened, err := storage.OpenSQLite(ctx, restored)
	if err != nil {
		t.Fatalf("open restored store: %v", err)
	}
	defer reopened.Close()
	app, _ = newTestApp(t, reopened)
	if len(app.FoodLogs.All()) != 1 {
		t.Fatalf("expected restored food log")
	}

	if err := os.WriteFile(backupPath+".sha256", []byte("deadbeef\n"), 0o644); err != nil {
		t.Fatalf("tamper checksum: %v", err)
	}
	if err := service.RestoreBackup(ctx, backupPath, filepath.Join(dir, "other.db"), false); err == nil || !strings.Contains(err.Error(), "checksum mismatch") {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
}

func TestRestoreRejectsForeignFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	junk := filepath.Join(dir, "notes.db")
	if err := os.WriteFile(junk, []byte("definitely not sqlite, just some text padding it out"), 0o644); err != nil {
		t.Fatalf("write junk: %v", err)
	}
	target := filepath.Join(dir, "mindmeal.db")
	if err := service.RestoreBackup(context.Background(), junk, target, false); err == nil {
		t.Fatalf("expected non-database file to be rejected")
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatalf("expected no database after failed restore, stat err=%v", err)
	}
}
