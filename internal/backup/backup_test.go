package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thatcatcamp/djchat/internal/db"
	"github.com/thatcatcamp/djchat/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupManager(t *testing.T) *Manager {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, _ := database.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.Migrate(database); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	iconsDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(iconsDir, "a.png"), []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	return NewManager(database, t.TempDir(), iconsDir)
}

func clockAt(ts ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := ts[i]
		if i < len(ts)-1 {
			i++
		}
		return t
	}
}

func TestCreateSnapshotsDatabaseAndIcons(t *testing.T) {
	m := setupManager(t)
	if err := m.DB.Create(&models.Category{Name: "jazz"}).Error; err != nil {
		t.Fatal(err)
	}

	meta, err := m.Create("manual")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if meta.Icons != 1 {
		t.Errorf("expected 1 icon, got %d", meta.Icons)
	}

	dir := filepath.Join(m.BackupPath, meta.Name)
	if _, err := os.Stat(filepath.Join(dir, "icons", "a.png")); err != nil {
		t.Errorf("icon not copied: %v", err)
	}

	snapshot, err := gorm.Open(sqlite.Open(filepath.Join(dir, meta.Database)), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open snapshot: %v", err)
	}
	var count int64
	snapshot.Model(&models.Category{}).Count(&count)
	if count != 1 {
		t.Errorf("snapshot has %d categories, want 1", count)
	}
}

func TestListAndPrune(t *testing.T) {
	m := setupManager(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = clockAt(base, base.Add(time.Hour), base.Add(2*time.Hour))

	for i := 0; i < 3; i++ {
		if _, err := m.Create(""); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	if !backups[0].Timestamp.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("newest backup should come first, got %s", backups[0].Timestamp)
	}

	removed, err := m.Prune(2)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 removed, got %d", removed)
	}

	backups, _ = m.List()
	if len(backups) != 2 || !backups[1].Timestamp.Equal(base.Add(time.Hour)) {
		t.Errorf("oldest backup should be pruned, have %+v", backups)
	}
}

func TestCreateRefusesDuplicateName(t *testing.T) {
	m := setupManager(t)
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = clockAt(fixed)

	if _, err := m.Create(""); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Create(""); err == nil {
		t.Error("second backup in the same second should fail")
	}
}

func TestListMissingDirectory(t *testing.T) {
	m := NewManager(nil, filepath.Join(t.TempDir(), "nope"), "")

	backups, err := m.List()
	if err != nil || backups != nil {
		t.Errorf("missing directory should list nothing, got %v, %v", backups, err)
	}
}
