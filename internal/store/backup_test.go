package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/swamp-dev/habitify/internal/config"
)

func testPaths(t *testing.T) config.Paths {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Storage.DataDir = t.TempDir()
	return cfg.Paths()
}

func TestBackupAndRestore(t *testing.T) {
	paths := testPaths(t)
	if err := os.WriteFile(paths.EntryLog, []byte("2026-10-01,Run,Completed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths.Goals, []byte(`{"Run": 1}`), 0644); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, time.October, 18, 7, 5, 9, 0, time.UTC)
	dir, err := Backup(paths, paths.BackupDir, now)
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}
	if filepath.Base(dir) != "backup-20261018-070509" {
		t.Errorf("unexpected backup dir name %s", dir)
	}
	if _, err := os.Stat(filepath.Join(dir, "habits.csv")); err != nil {
		t.Errorf("entry log not backed up: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "habits_metadata.json")); !os.IsNotExist(err) {
		t.Errorf("missing metadata should be skipped, stat err = %v", err)
	}

	if err := os.WriteFile(paths.EntryLog, []byte("clobbered\n"), 0644); err != nil {
		t.Fatal(err)
	}

	restored, err := Restore(paths, dir)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if len(restored) != 2 {
		t.Errorf("expected 2 restored files, got %v", restored)
	}

	data, err := os.ReadFile(paths.EntryLog)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "2026-10-01,Run,Completed\n" {
		t.Errorf("entry log not restored: %q", data)
	}
}

func TestBackupNothingToCopy(t *testing.T) {
	paths := testPaths(t)
	if _, err := Backup(paths, paths.BackupDir, time.Now()); err == nil {
		t.Fatal("expected error when no data files exist")
	}
}

func TestRestoreMissingDir(t *testing.T) {
	paths := testPaths(t)
	_, err := Restore(paths, filepath.Join(paths.BackupDir, "nope"))
	if !errors.Is(err, ErrBackupNotFound) {
		t.Fatalf("expected ErrBackupNotFound, got %v", err)
	}
}

func TestBackupSameSecondFails(t *testing.T) {
	paths := testPaths(t)
	if err := os.WriteFile(paths.EntryLog, []byte("2026-10-01,Run,Completed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, time.October, 18, 7, 5, 9, 0, time.UTC)
	first, err := Backup(paths, paths.BackupDir, now)
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}

	if err := os.WriteFile(paths.EntryLog, []byte("2026-10-02,Run,Skipped\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Backup(paths, paths.BackupDir, now); !errors.Is(err, ErrBackupExists) {
		t.Fatalf("expected ErrBackupExists, got %v", err)
	}

	data, err := os.ReadFile(filepath.Join(first, "habits.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "2026-10-01,Run,Completed\n" {
		t.Errorf("first backup was overwritten: %q", data)
	}
}
