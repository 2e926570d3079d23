package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Backup file naming: ortobahn_<YYYYMMDD_HHMMSS>.db. The timestamp is UTC
// with second precision, so lexicographic order on the name is chronological
// order. Two rotations inside the same second compute the same name; the
// second copy replaces the first (last writer wins).
const (
	BackupPrefix    = "ortobahn_"
	BackupExt       = ".db"
	TimestampLayout = "20060102_150405"
)

// Rotator copies a source database file into a destination directory under a
// timestamped name and enforces a retention ceiling by deleting the oldest
// surplus copies. It holds no state between calls and provides no
// cross-process locking; callers serialize rotations (the cron scheduler
// runs one job at a time).
type Rotator struct {
	Source     string
	Dir        string
	MaxBackups int

	log *log.Logger
	now func() time.Time
}

// NewRotator validates the retention ceiling and returns a rotator.
// A ceiling of zero or less is a configuration error: it would instruct the
// rotator to delete the backup it just created.
func NewRotator(source, dir string, maxBackups int, logger *log.Logger) (*Rotator, error) {
	if maxBackups <= 0 {
		return nil, fmt.Errorf("max backups must be a positive integer, got %d", maxBackups)
	}
	if logger == nil {
		logger = log.Default()
	}

	return &Rotator{
		Source:     source,
		Dir:        dir,
		MaxBackups: maxBackups,
		log:        logger,
		now:        time.Now,
	}, nil
}

// Rotate produces one timestamped backup of the source file and prunes the
// oldest copies beyond the retention ceiling. It returns the path of the new
// backup and created=true on success. A missing source file is not an error:
// it returns created=false with no side effects.
func (r *Rotator) Rotate() (string, bool, error) {
	srcInfo, err := os.Stat(r.Source)
	if os.IsNotExist(err) {
		r.log.Warn("Database file not found, nothing to back up", "path", r.Source)
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to stat source file: %w", err)
	}

	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return "", false, fmt.Errorf("failed to create backup directory: %w", err)
	}

	stamp := r.now().UTC().Format(TimestampLayout)
	backupPath := filepath.Join(r.Dir, BackupPrefix+stamp+BackupExt)

	if err := copyFile(r.Source, backupPath, srcInfo.ModTime()); err != nil {
		return "", false, fmt.Errorf("failed to copy database to %s: %w", backupPath, err)
	}

	r.log.Info("Database backup created", "path", backupPath, "size", srcInfo.Size())

	if err := r.prune(); err != nil {
		return "", false, err
	}

	return backupPath, true, nil
}

// prune deletes the oldest matching backups until at most MaxBackups remain.
// Ordering uses the timestamp embedded in the file name rather than stat
// modification time, which some file systems truncate.
func (r *Rotator) prune() error {
	backups, err := r.listBackups()
	if err != nil {
		return err
	}

	for len(backups) > r.MaxBackups {
		oldest := backups[0]
		if err := os.Remove(oldest); err != nil {
			return fmt.Errorf("failed to delete stale backup %s: %w", oldest, err)
		}
		r.log.Info("Deleted stale backup", "path", oldest)
		backups = backups[1:]
	}

	return nil
}

// listBackups returns matching backup files sorted oldest first.
func (r *Rotator) listBackups() ([]string, error) {
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, BackupPrefix) || !strings.HasSuffix(name, BackupExt) {
			continue
		}
		backups = append(backups, filepath.Join(r.Dir, name))
	}

	sort.Strings(backups)
	return backups, nil
}

// copyFile writes src to dst via a temporary file in the same directory and
// renames it into place, so a concurrent reader never observes a truncated
// backup. The rename also gives same-second name collisions clean
// last-writer-wins semantics.
func copyFile(src, dst string, modTime time.Time) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), filepath.Base(dst)+".tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to copy contents: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chtimes(tmpPath, modTime, modTime); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to preserve modification time: %w", err)
	}

	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move backup into place: %w", err)
	}

	return nil
}
