package utils

import (
	"testing"
	"time"
)

func init() {
	SetJWTSecret("consultdesk-jwt-test-secret")
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(1, "consultant", "user", 24)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Error("GenerateToken() returned empty token")
	}
	if len(token) < 50 {
		t.Errorf("token seems too short: %d chars", len(token))
	}
}

func TestGenerateToken_DifferentOperators(t *testing.T) {
	token1, _ := GenerateToken(1, "admin", "admin", 24)
	token2, _ := GenerateToken(2, "consultant", "user", 24)

	if token1 == token2 {
		t.Error("different operators should produce different tokens")
	}
}

func TestParseToken_RoundTrip(t *testing.T) {
	token, _ := GenerateToken(42, "consultant", "user", 24)

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, expected 42", claims.UserID)
	}
	if claims.Username != "consultant" {
		t.Errorf("Username = %q, expected %q", claims.Username, "consultant")
	}
	if claims.Role != "user" {
		t.Errorf("Role = %q, expected %q", claims.Role, "user")
	}
}

func TestParseToken_Invalid(t *testing.T) {
	invalidTokens := []string{
		"",
		"invalid",
		"not.a.token",
		"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid.signature",
	}

	for _, token := range invalidTokens {
		if _, err := ParseToken(token); err == nil {
			t.Errorf("ParseToken(%q) should return error", token)
		}
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	SetJWTSecret("first-deployment-secret")
	token, _ := GenerateToken(1, "consultant", "user", 24)

	// Rotating the secret must invalidate outstanding tokens.
	SetJWTSecret("rotated-secret")
	_, err := ParseToken(token)

	SetJWTSecret("consultdesk-jwt-test-secret")

	if err == nil {
		t.Error("ParseToken should fail after the secret was rotated")
	}
}

func TestGenerateToken_Expiration(t *testing.T) {
	token, _ := GenerateToken(1, "consultant", "user", 1)
	claims, _ := ParseToken(token)

	expiresAt := claims.ExpiresAt.Time
	now := time.Now()

	if expiresAt.Before(now) {
		t.Error("token should not be expired immediately")
	}

	expectedExpiry := now.Add(1 * time.Hour)
	diff := expiresAt.Sub(expectedExpiry)
	if diff < -time.Minute || diff > time.Minute {
		t.Errorf("expiration time is off by more than 1 minute: %v", diff)
	}
}
