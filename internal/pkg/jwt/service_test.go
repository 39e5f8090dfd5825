package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	adminID := uuid.New()

	token, err := svc.GenerateToken(adminID, "hr@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.AdminID != adminID {
		t.Fatalf("admin id mismatch: %s", claims.AdminID)
	}
	if claims.Email != "hr@example.com" {
		t.Fatalf("email mismatch: %s", claims.Email)
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	token, err := svc.GenerateToken(uuid.New(), "hr@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = func() time.Time { return base.Add(2 * time.Hour) }
	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	issuer := NewHMACService("secret-a", time.Hour)
	verifier := NewHMACService("secret-b", time.Hour)

	token, err := issuer.GenerateToken(uuid.New(), "hr@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifier.ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_Garbage(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
