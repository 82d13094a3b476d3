package utils

import (
	"testing"

	"buddies-inn/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}

	token, err := GenerateToken(7, "ama@example.com", "customer")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("expected user id 7, got %d", claims.UserID)
	}
	if claims.Email != "ama@example.com" {
		t.Errorf("expected email preserved, got %q", claims.Email)
	}
	if claims.Role != "customer" {
		t.Errorf("expected role customer, got %q", claims.Role)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}

	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "first-secret", JWTExpiry: "1h"}
	token, err := GenerateToken(7, "ama@example.com", "customer")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	config.AppConfig.JWTSecret = "second-secret"
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected an error for a token signed with a different secret")
	}
}
