// SPDX-License-Identifier: MIT
package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost = 12

	// MinPasswordLength applies to new accounts only; existing hashes are
	// checked whatever their length
	MinPasswordLength = 8
	// bcrypt ignores input past 72 bytes
	maxPasswordBytes = 72
)

var (
	// ErrEmptyPassword is returned when hashing an empty password
	ErrEmptyPassword = errors.New("password cannot be empty")
	// ErrWeakPassword wraps every reason ValidateNewPassword rejects a password
	ErrWeakPassword = errors.New("password too weak")
)

// ValidateNewPassword checks a password chosen for a new account. The
// account email may not appear in it.
func ValidateNewPassword(password, email string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case len([]rune(password)) < MinPasswordLength:
		return fmt.Errorf("%w: needs at least %d characters", ErrWeakPassword, MinPasswordLength)
	case len(password) > maxPasswordBytes:
		return fmt.Errorf("%w: longer than %d bytes", ErrWeakPassword, maxPasswordBytes)
	case strings.TrimSpace(password) != password:
		return fmt.Errorf("%w: leading or trailing whitespace", ErrWeakPassword)
	}

	local, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(email)), "@")
	if local != "" && strings.Contains(strings.ToLower(password), local) {
		return fmt.Errorf("%w: contains the account name", ErrWeakPassword)
	}
	return nil
}

// HashPassword hashes a password for storage on a user row
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. An empty password
// never matches.
func CheckPassword(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
