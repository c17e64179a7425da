package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret"
	adminID := uuid.New()

	token, err := GenerateJWT(secret, adminID, "admin@takeam.ng", "SUPER_ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(secret, token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.AdminID != adminID {
		t.Errorf("admin id = %s, want %s", claims.AdminID, adminID)
	}
	if claims.Email != "admin@takeam.ng" {
		t.Errorf("email = %q, want admin@takeam.ng", claims.Email)
	}
	if claims.Role != "SUPER_ADMIN" {
		t.Errorf("role = %q, want SUPER_ADMIN", claims.Role)
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret-a", uuid.New(), "a@takeam.ng", "ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT("secret-b", token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("expected mismatched password to fail")
	}
}
