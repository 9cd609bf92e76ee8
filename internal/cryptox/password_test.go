package cryptox

import (
	"strings"
	"testing"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword([]byte("123456"))
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}

	ok, err := CheckPassword(hash, []byte("123456"))
	if err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	if !ok {
		t.Fatalf("expected password to verify")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword([]byte("123456"))
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := CheckPassword(hash, []byte("wrong"))
	if err != nil {
		t.Fatalf("mismatch must not be an error, got: %v", err)
	}
	if ok {
		t.Fatalf("expected verification to fail")
	}
}

func TestHashPassword_Empty(t *testing.T) {
	t.Parallel()

	if _, err := HashPassword(nil); err != ErrEmptyPassword {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if _, err := CheckPassword("not-a-bcrypt-hash", []byte("x")); err == nil {
		t.Fatalf("expected error for malformed hash")
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	a, err := HashPassword([]byte("same"))
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword([]byte("same"))
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Fatalf("expected random salts to produce distinct hashes")
	}
}
