package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitConfig(t *testing.T) {
	// Create temp directory for test config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	// Verify config file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestGetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := InitConfig(configPath); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	if value := GetString("server.http_port"); value != "8000" {
		t.Errorf("Expected default http_port to be 8000, got %s", value)
	}
	if value := GetString("theme.palette"); value != "blue" {
		t.Errorf("Expected default theme.palette to be blue, got %s", value)
	}
	if value := GetInt("auth.jwt_expiry_hours"); value != 8 {
		t.Errorf("Expected default jwt_expiry_hours to be 8, got %d", value)
	}
}

func TestSetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := InitConfig(configPath); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	err := Set("server.http_port", "8080")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value := GetString("server.http_port")
	if value != "8080" {
		t.Errorf("Expected http_port to be 8080, got %s", value)
	}

	// Reload from disk and make sure the value stuck
	if err := InitConfig(configPath); err != nil {
		t.Fatalf("InitConfig reload failed: %v", err)
	}
	if value := GetString("server.http_port"); value != "8080" {
		t.Errorf("Expected persisted http_port 8080, got %s", value)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("DJCHAT_THEME_PALETTE", "rose")

	tmpDir := t.TempDir()
	if err := InitConfig(filepath.Join(tmpDir, "config.yaml")); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	if value := GetString("theme.palette"); value != "rose" {
		t.Errorf("Expected env override rose, got %s", value)
	}
}
