// SPDX-License-Identifier: MIT
package users

import (
	"errors"
	"testing"

	"github.com/thatcatcamp/djchat/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestCreateUser(t *testing.T) {
	db := setupTestDB(t)

	user, err := CreateUser(db, "test@example.com", "password123")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if user.Email != "test@example.com" {
		t.Errorf("Expected email test@example.com, got %s", user.Email)
	}

	if user.PasswordHash == "password123" {
		t.Error("Password should be hashed, not stored in plain text")
	}
}

func TestGetUserByEmail(t *testing.T) {
	db := setupTestDB(t)

	if _, err := CreateUser(db, "find@example.com", "password"); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	user, err := GetUserByEmail(db, "find@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}

	if user.Email != "find@example.com" {
		t.Errorf("Expected email find@example.com, got %s", user.Email)
	}
}

func TestListUsers(t *testing.T) {
	db := setupTestDB(t)

	if _, err := CreateUser(db, "user1@example.com", "pass1"); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if _, err := CreateUser(db, "user2@example.com", "pass2"); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	users, err := ListUsers(db)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}

	if len(users) != 2 {
		t.Errorf("Expected 2 users, got %d", len(users))
	}
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)

	user, _ := CreateUser(db, "delete@example.com", "password")

	err := DeleteUser(db, user.ID)
	if err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	// Verify user is deleted
	_, err = GetUserByEmail(db, "delete@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound for deleted user, got %v", err)
	}

	if err := DeleteUser(db, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Deleting twice should give ErrUserNotFound, got %v", err)
	}
}

func TestCreateUserRestoresDeleted(t *testing.T) {
	db := setupTestDB(t)

	original, _ := CreateUser(db, "back@example.com", "first")
	if err := DeleteUser(db, original.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	restored, err := CreateUser(db, "Back@Example.com ", "second")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if restored.ID != original.ID {
		t.Errorf("Expected restored user id %d, got %d", original.ID, restored.ID)
	}
	if _, err := Authenticate(db, "back@example.com", "second"); err != nil {
		t.Errorf("Restored user should log in with the new password: %v", err)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	db := setupTestDB(t)

	if _, err := CreateUser(db, "dup@example.com", "password"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, err := CreateUser(db, "DUP@example.com", "password"); err == nil {
		t.Error("Expected error for duplicate email")
	}
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)

	if _, err := CreateUser(db, "login@example.com", "correct"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	user, err := Authenticate(db, "LOGIN@example.com", "correct")
	if err != nil || user.Email != "login@example.com" {
		t.Errorf("Authenticate failed: %v", err)
	}

	if _, err := Authenticate(db, "login@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := Authenticate(db, "nobody@example.com", "correct"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}
