// Package backup snapshots the DJCHAT database and stored icons.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

// DefaultKeep is how many backups Prune leaves when not configured
const DefaultKeep = 10

const (
	dirPrefix    = "djchat-"
	timeLayout   = "20060102-150405"
	metadataFile = "metadata.json"
	databaseFile = "djchat.db"
	iconsSubdir  = "icons"
)

// ErrUnsupportedDatabase is returned for databases that cannot be
// snapshotted from inside the process
var ErrUnsupportedDatabase = errors.New("backups are only supported for sqlite databases")

// Metadata describes one backup
type Metadata struct {
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
	Icons     int       `json:"icons"`
	Note      string    `json:"note,omitempty"`
}

// Manager creates and prunes backups under BackupPath
type Manager struct {
	BackupPath string
	IconsDir   string
	DB         *gorm.DB

	now func() time.Time
}

// NewManager creates a backup manager
func NewManager(database *gorm.DB, backupPath, iconsDir string) *Manager {
	return &Manager{
		BackupPath: backupPath,
		IconsDir:   iconsDir,
		DB:         database,
		now:        time.Now,
	}
}

// Create writes a consistent copy of the database plus every stored icon
// into a new timestamped directory
func (m *Manager) Create(note string) (*Metadata, error) {
	if m.DB.Dialector.Name() != "sqlite" {
		return nil, ErrUnsupportedDatabase
	}

	ts := m.now().UTC()
	name := dirPrefix + ts.Format(timeLayout)
	dir := filepath.Join(m.BackupPath, name)
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("backup %s already exists", name)
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	dbPath := filepath.Join(dir, databaseFile)
	if err := m.DB.Exec("VACUUM INTO ?", dbPath).Error; err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("failed to snapshot database: %w", err)
	}

	icons, err := copyIcons(m.IconsDir, filepath.Join(dir, iconsSubdir))
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}

	meta := &Metadata{
		Name:      name,
		Timestamp: ts,
		Database:  databaseFile,
		Icons:     icons,
		Note:      note,
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, metadataFile), data, 0640); err != nil {
		return nil, fmt.Errorf("failed to write metadata: %w", err)
	}

	return meta, nil
}

// List returns every backup, newest first. Directories without readable
// metadata are skipped.
func (m *Manager) List() ([]Metadata, error) {
	entries, err := os.ReadDir(m.BackupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Metadata
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), dirPrefix) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(m.BackupPath, entry.Name(), metadataFile))
		if err != nil {
			continue
		}
		var meta Metadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		backups = append(backups, meta)
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// Prune deletes all but the newest keep backups and returns how many it removed
func (m *Manager) Prune(keep int) (int, error) {
	if keep < 1 {
		keep = 1
	}

	backups, err := m.List()
	if err != nil {
		return 0, err
	}
	if len(backups) <= keep {
		return 0, nil
	}

	removed := 0
	for _, b := range backups[keep:] {
		if err := os.RemoveAll(filepath.Join(m.BackupPath, b.Name)); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", b.Name, err)
		}
		removed++
	}
	return removed, nil
}

func copyIcons(src, dst string) (int, error) {
	if src == "" {
		return 0, nil
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read icons directory: %w", err)
	}

	if err := os.MkdirAll(dst, 0750); err != nil {
		return 0, fmt.Errorf("failed to create icons backup directory: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := copyFile(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}
