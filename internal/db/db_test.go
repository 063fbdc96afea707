// SPDX-License-Identifier: MIT
package db

import (
	"path/filepath"
	"testing"

	"github.com/thatcatcamp/djchat/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return testDB
}

func TestMigrateCreatesTables(t *testing.T) {
	testDB := setupTestDB(t)

	if err := Migrate(testDB); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	for _, table := range []string{"users", "categories", "servers", "channels", "server_members"} {
		if !testDB.Migrator().HasTable(table) {
			t.Errorf("table %s not created", table)
		}
	}

	if !testDB.Migrator().HasColumn(&models.Category{}, "icon") {
		t.Error("icon column not found in categories table")
	}
}

func TestInitDBSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "djchat.db")

	if err := InitDB("sqlite", path); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	if GetDB() == nil {
		t.Fatal("GetDB returned nil after InitDB")
	}

	SetDB(nil)
	if GetDB() != nil {
		t.Error("SetDB(nil) should clear the connection")
	}
}

func TestInitDBUnsupportedType(t *testing.T) {
	if err := InitDB("oracle", "x"); err == nil {
		t.Error("expected error for unsupported database type")
	}
}
