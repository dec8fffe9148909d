package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mindmeal/mindmeal-cli/internal/db"
)

const checksumSuffix = ".sha256"

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

// CreateBackup snapshots the sqlite store at dbPath into outPath with
// VACUUM INTO, which includes pages still sitting in the WAL. A sidecar in
// sha256sum format is written next to the snapshot.
func CreateBackup(ctx context.Context, dbPath, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(dbPath) == "" || strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("database and backup paths are required")
	}
	if _, err := os.Stat(dbPath); err != nil {
		return BackupInfo{}, fmt.Errorf("database %s: %w", dbPath, err)
	}
	if _, err := os.Stat(outPath); err == nil {
		return BackupInfo{}, fmt.Errorf("backup %s already exists", outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("prepare backup directory: %w", err)
	}

	conn, err := db.Open(ctx, dbPath)
	if err != nil {
		return BackupInfo{}, err
	}
	_, err = conn.ExecContext(ctx, `VACUUM INTO ?`, outPath)
	if cerr := conn.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return BackupInfo{}, fmt.Errorf("snapshot %s: %w", dbPath, err)
	}

	sum, err := sha256File(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	line := sum + "  " + filepath.Base(outPath) + "\n"
	if err := os.WriteFile(outPath+checksumSuffix, []byte(line), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write %s%s: %w", outPath, checksumSuffix, err)
	}
	return describeBackup(outPath, sum)
}

// RestoreBackup replaces dbPath with the snapshot at backupPath. The sidecar
// checksum is verified when present and the snapshot must open as a mindmeal
// store. An existing database is only replaced with force.
func RestoreBackup(ctx context.Context, backupPath, dbPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("backup and database paths are required")
	}
	if _, err := os.Stat(dbPath); err == nil && !force {
		return fmt.Errorf("database %s already exists (use --force to overwrite)", dbPath)
	}
	want, err := readChecksum(backupPath)
	if err != nil {
		return err
	}
	if want != "" {
		got, err := sha256File(backupPath)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("backup checksum mismatch for %s", backupPath)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("prepare database directory: %w", err)
	}
	staged, err := stageCopy(backupPath, filepath.Dir(dbPath))
	if err != nil {
		return err
	}
	defer func() {
		for _, suffix := range []string{"", "-wal", "-shm"} {
			_ = os.Remove(staged + suffix)
		}
	}()
	if err := checkSnapshot(ctx, staged); err != nil {
		return fmt.Errorf("backup %s: %w", backupPath, err)
	}
	for _, suffix := range []string{"-wal", "-shm"} {
		if err := os.Remove(dbPath + suffix); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("drop stale %s%s: %w", dbPath, suffix, err)
		}
	}
	if err := os.Rename(staged, dbPath); err != nil {
		return fmt.Errorf("replace %s: %w", dbPath, err)
	}
	return nil
}

// ListBackups returns snapshots in dir, newest first.
func ListBackups(dir string) ([]BackupInfo, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.db"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	items := make([]BackupInfo, 0, len(paths))
	for _, p := range paths {
		sum, err := readChecksum(p)
		if err != nil {
			return nil, err
		}
		info, err := describeBackup(p, sum)
		if err != nil {
			continue
		}
		items = append(items, info)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func describeBackup(path, sum string) (BackupInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return BackupInfo{}, err
	}
	return BackupInfo{Path: path, Checksum: sum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

// readChecksum returns the digest recorded next to path, or "" without a
// sidecar.
func readChecksum(path string) (string, error) {
	raw, err := os.ReadFile(path + checksumSuffix)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read checksum for %s: %w", path, err)
	}
	fields := strings.Fields(string(raw))
	if len(fields) == 0 {
		return "", fmt.Errorf("empty checksum file for %s", path)
	}
	return strings.ToLower(fields[0]), nil
}

func checkSnapshot(ctx context.Context, path string) error {
	conn, err := db.Open(ctx, path)
	if err != nil {
		return err
	}
	defer conn.Close()
	v, err := db.SchemaVersion(ctx, conn)
	if err != nil {
		return fmt.Errorf("not a mindmeal database: %w", err)
	}
	if v > db.LatestVersion() {
		return fmt.Errorf("schema version %d is newer than this build supports (%d)", v, db.LatestVersion())
	}
	return nil
}

func stageCopy(src, dir string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()
	tmp, err := os.CreateTemp(dir, ".mindmeal-restore-*.db")
	if err != nil {
		return "", fmt.Errorf("stage restore: %w", err)
	}
	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("stage restore: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func sha256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("checksum %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
