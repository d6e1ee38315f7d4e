package crypto

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if hash == "" {
		t.Fatal("HashPassword() returned empty string")
	}
	if strings.Contains(hash, "secret1") {
		t.Fatal("HashPassword() output contains the plaintext password")
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("HashPassword() expected 6 PHC parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("HashPassword() algorithm = %q, want %q", parts[1], "argon2id")
	}
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	password := "my-secure-password"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	match, err := VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword() unexpected error: %v", err)
	}
	if !match {
		t.Error("VerifyPassword() returned false for correct password")
	}
}

func TestVerifyPasswordWrong(t *testing.T) {
	hash, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	for _, candidate := range []string{"wrong-password", "correct-passwore", "", "correct-password "} {
		match, err := VerifyPassword(candidate, hash)
		if err != nil {
			t.Fatalf("VerifyPassword(%q) unexpected error: %v", candidate, err)
		}
		if match {
			t.Errorf("VerifyPassword(%q) returned true for wrong password", candidate)
		}
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	hash1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	hash2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("HashPassword() produced identical hashes for same password (salt should differ)")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("password", "not-a-phc-string"); err == nil {
		t.Error("VerifyPassword() expected error for malformed hash")
	}
	if _, err := VerifyPassword("password", "$bcrypt$v=19$m=65536,t=3,p=2$abc$def"); err == nil {
		t.Error("VerifyPassword() expected error for foreign algorithm")
	}
}
