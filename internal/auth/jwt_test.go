// SPDX-License-Identifier: MIT
package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thatcatcamp/djchat/internal/models"
)

const testSecret = "test-secret-do-not-use"

func TestGenerateToken(t *testing.T) {
	t.Setenv("DJCHAT_JWT_SECRET", testSecret)
	user := &models.User{ID: 1, Email: "test@example.com"}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	// Token should have 3 parts separated by dots
	if strings.Count(token, ".") != 2 {
		t.Errorf("JWT token should have three parts, got %q", token)
	}
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	t.Setenv("DJCHAT_JWT_SECRET", "")

	if _, err := GenerateToken(&models.User{ID: 1}); err == nil {
		t.Error("GenerateToken should refuse to sign without a secret")
	}
}

func TestValidateTokenValid(t *testing.T) {
	t.Setenv("DJCHAT_JWT_SECRET", testSecret)
	user := &models.User{ID: 7, Email: "test@example.com"}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	if claims.UserID != user.ID {
		t.Errorf("Expected UserID %d, got %d", user.ID, claims.UserID)
	}

	if claims.Email != user.Email {
		t.Errorf("Expected Email %s, got %s", user.Email, claims.Email)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	t.Setenv("DJCHAT_JWT_SECRET", testSecret)

	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Error("ValidateToken should fail for expired token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("DJCHAT_JWT_SECRET", testSecret)
	token, _ := GenerateToken(&models.User{ID: 1})

	t.Setenv("DJCHAT_JWT_SECRET", "another-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("ValidateToken should fail for a token signed with another secret")
	}
}

func TestValidateTokenMalformed(t *testing.T) {
	if _, err := ValidateToken("not-a-valid-jwt-token"); err == nil {
		t.Error("ValidateToken should fail for malformed token")
	}
}

func TestValidateTokenEmpty(t *testing.T) {
	if _, err := ValidateToken(""); err == nil {
		t.Error("ValidateToken should fail for empty token")
	}
}
