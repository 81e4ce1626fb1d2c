package middleware

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	token, err := GenerateToken("ops@example.com", RoleRegistrar, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := VerifyToken(token, "test-secret")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Subject != "ops@example.com" {
		t.Errorf("unexpected subject: %q", claims.Subject)
	}
	if claims.Role != RoleRegistrar {
		t.Errorf("unexpected role: %q", claims.Role)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("ops@example.com", RoleRegistrar, "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := VerifyToken(token, "secret-b"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	token, err := GenerateToken("ops@example.com", RoleRegistrar, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := VerifyToken(token, "test-secret"); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}
