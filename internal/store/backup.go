package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/swamp-dev/habitify/internal/config"
)

var (
	// ErrBackupNotFound is returned when restoring from a missing directory.
	ErrBackupNotFound = errors.New("backup not found")
	// ErrBackupExists is returned when a backup with the same timestamp exists.
	ErrBackupExists = errors.New("backup already exists")
)

// Backup copies the existing data files into a new timestamped directory under
// root and returns its path.
func Backup(paths config.Paths, root string, now time.Time) (string, error) {
	dir := filepath.Join(root, "backup-"+now.Format("20060102-150405"))
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", fmt.Errorf("creating backup root: %w", err)
	}
	if err := os.Mkdir(dir, 0755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrBackupExists, dir)
		}
		return "", fmt.Errorf("creating backup directory: %w", err)
	}

	copied := 0
	for _, src := range dataFiles(paths) {
		ok, err := copyIfExists(src, filepath.Join(dir, filepath.Base(src)))
		if err != nil {
			return "", err
		}
		if ok {
			copied++
		}
	}
	if copied == 0 {
		os.Remove(dir)
		return "", fmt.Errorf("nothing to back up in %s", paths.DataDir)
	}
	return dir, nil
}

// Restore copies the files found in a backup directory over the live data files.
func Restore(paths config.Paths, dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrBackupNotFound, dir)
	}

	var restored []string
	for _, dst := range dataFiles(paths) {
		ok, err := copyIfExists(filepath.Join(dir, filepath.Base(dst)), dst)
		if err != nil {
			return restored, err
		}
		if ok {
			restored = append(restored, dst)
		}
	}
	if len(restored) == 0 {
		return nil, fmt.Errorf("%w: no data files in %s", ErrBackupNotFound, dir)
	}
	return restored, nil
}

func dataFiles(paths config.Paths) []string {
	return []string{paths.EntryLog, paths.Goals, paths.Metadata}
}

func copyIfExists(src, dst string) (bool, error) {
	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	err = writeFileAtomic(dst, func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("copying %s: %w", filepath.Base(src), err)
	}
	return true, nil
}
