// Package backup snapshots the local storage file before risky operations
// and on demand. Postgres storage is excluded; shared databases have their
// own backup story.
package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/weekendly/weekendly/internal/constants"
	"github.com/weekendly/weekendly/internal/logger"
)

const (
	// MaxBackups is the number of snapshots kept before rotation
	MaxBackups = 14
	// BackupDirName is the directory next to the storage file
	BackupDirName = "backups"

	timestampFormat = "20060102-150405"
)

// Info describes one snapshot on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager snapshots a single storage file into a sibling backups directory.
type Manager struct {
	storagePath string
	backupDir   string
}

func NewManager(storagePath string) *Manager {
	return &Manager{
		storagePath: storagePath,
		backupDir:   filepath.Join(filepath.Dir(storagePath), BackupDirName),
	}
}

// BackupDir returns the snapshot directory path.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

func (m *Manager) backupName(t time.Time) string {
	ext := filepath.Ext(m.storagePath)
	if ext == "" {
		ext = ".db"
	}
	return fmt.Sprintf("%s-%s%s", constants.AppName, t.Format(timestampFormat), ext)
}

// Create writes a new snapshot and rotates old ones. Returns the snapshot
// path.
func (m *Manager) Create() (string, error) {
	if _, err := os.Stat(m.storagePath); os.IsNotExist(err) {
		return "", fmt.Errorf("storage does not exist: %s", m.storagePath)
	}
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := m.backupName(time.Now())
	backupPath := filepath.Join(m.backupDir, name)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			break
		}
		if i > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		backupPath = filepath.Join(m.backupDir, fmt.Sprintf("%s-%d%s", base, i, ext))
	}

	if err := m.snapshot(backupPath); err != nil {
		return "", fmt.Errorf("failed to back up storage: %w", err)
	}

	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return backupPath, nil
}

// snapshot copies the storage file. SQLite files go through VACUUM INTO so
// a live database is copied consistently; anything else (the json store) is
// a plain file copy.
func (m *Manager) snapshot(destPath string) error {
	if strings.EqualFold(filepath.Ext(m.storagePath), ".json") {
		return copyFile(m.storagePath, destPath)
	}

	src, err := sql.Open("sqlite", m.storagePath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer src.Close()

	var count int
	if err := src.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("storage appears to be corrupted: %w", err)
	}

	if _, err := src.Exec("VACUUM INTO ?", destPath); err != nil {
		// VACUUM INTO needs SQLite >= 3.27
		src.Close()
		return copyFile(m.storagePath, destPath)
	}
	return nil
}

// List returns the snapshots, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	prefix := constants.AppName + "-"
	var backups []Info
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}

		stamp := strings.TrimPrefix(name, prefix)
		stamp = strings.TrimSuffix(stamp, filepath.Ext(stamp))
		if i := strings.LastIndex(stamp, "-"); i > len(timestampFormat)-1 {
			stamp = stamp[:i] // drop the collision counter
		}
		timestamp, err := time.Parse(timestampFormat, stamp)
		if err != nil {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		backups = append(backups, Info{Path: path, Timestamp: timestamp, Size: info.Size()})
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
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the storage file with a snapshot. The current file is
// snapshotted first so a bad restore can itself be undone.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := m.verify(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.storagePath); err == nil {
		saved, err := m.Create()
		if err != nil {
			return fmt.Errorf("failed to back up current storage before restore: %w", err)
		}
		fmt.Printf("Saved current storage as %s\n", filepath.Base(saved))
	}

	// Copy then rename so a failed restore never leaves a half-written file.
	tempPath := m.storagePath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.storagePath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to restore storage: %w", err)
	}
	return nil
}

func (m *Manager) verify(path string) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		_, err := os.Stat(path)
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
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
