// Package backup manages point-in-time copies of the persisted snapshot,
// for both the JSON and SQLite backends.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tuncdemir/rutin/internal/constants"
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager copies the active snapshot into a backups directory next to it and
// prunes old copies beyond the retention limit.
type Manager struct {
	snapshotPath string
	backupDir    string
}

func NewManager(snapshotPath string) *Manager {
	return &Manager{
		snapshotPath: snapshotPath,
		backupDir:    filepath.Join(filepath.Dir(snapshotPath), constants.BackupDirName),
	}
}

func (m *Manager) BackupDir() string {
	return m.backupDir
}

// suffix returns the snapshot's file extension so backups keep the format of
// the store they came from.
func (m *Manager) suffix() string {
	ext := filepath.Ext(m.snapshotPath)
	if ext == "" {
		ext = ".json"
	}
	return ext
}

// Create writes a new backup of the snapshot and rotates old ones.
func (m *Manager) Create() (string, error) {
	return m.create(false)
}

func (m *Manager) create(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.snapshotPath); os.IsNotExist(err) {
		return "", fmt.Errorf("snapshot does not exist: %s", m.snapshotPath)
	}

	// Second precision keeps names unique for interactive use; a counter
	// covers repeated backups within the same second.
	timestamp := time.Now().Format("20060102-150405")
	name := constants.BackupFilePrefix + timestamp + m.suffix()
	path := filepath.Join(m.backupDir, name)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		name = fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, counter, m.suffix())
		path = filepath.Join(m.backupDir, name)
	}

	if err := copyFile(m.snapshotPath, path); err != nil {
		return "", fmt.Errorf("failed to copy snapshot: %w", err)
	}

	if !skipRotation {
		if err := m.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return path, nil
}

// List returns all backups, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix()) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.suffix())
		// Drop a trailing collision counter if present
		if parts := strings.Split(stamp, "-"); len(parts) == 3 {
			stamp = parts[0] + "-" + parts[1]
		}

		timestamp, err := time.Parse("20060102-150405", stamp)
		if err != nil {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}

	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the active snapshot with the given backup. The current
// snapshot, if any, is backed up first.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if _, err := os.Stat(m.snapshotPath); err == nil {
		if _, err := m.create(true); err != nil {
			return fmt.Errorf("failed to back up current snapshot before restore: %w", err)
		}
	}

	// Copy to a temp file and rename so the swap is atomic
	tempPath := m.snapshotPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.snapshotPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to restore snapshot: %w", err)
	}

	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
