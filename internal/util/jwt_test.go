package util

import (
	"testing"
	"time"

	"ai_tutor_backend/internal/model"
)

func testUser() *model.User {
	u := &model.User{
		Email: "student@example.com",
		Role:  model.Student,
	}
	u.ID = 42
	return u
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(testUser(), "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error: %v", err)
	}

	claims, err := ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseJWT() error: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != model.Student {
		t.Errorf("Role = %q, want student", claims.Role)
	}
	if claims.Email != "student@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), "real-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error: %v", err)
	}

	if _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Error("expected error for a token signed with a different secret")
	}
}

func TestParseJWTRejectsExpiredToken(t *testing.T) {
	token, err := GenerateJWT(testUser(), "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT() error: %v", err)
	}

	if _, err := ParseJWT(token, "test-secret"); err == nil {
		t.Error("expected error for an expired token")
	}
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	if _, err := ParseJWT("not-a-token", "test-secret"); err == nil {
		t.Error("expected error for a malformed token")
	}
}
