package crypto

import (
	"strings"
	"testing"
)

func TestBcrypt_Hash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "success", password: "testPassword123"},
		{name: "empty password", password: "", wantErr: ErrEmptyPassword},
		{name: "max length", password: strings.Repeat("a", 72)},
		{name: "too long", password: strings.Repeat("a", 73), wantErr: ErrPasswordTooLong},
		{name: "unicode", password: "パスワード🔐"},
		{name: "special chars", password: "p@ssw0rd!#$%"},
		{name: "null byte", password: "pass\x00word"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			b := NewBcrypt(4) // min cost keeps the test fast

			// Act
			hash, err := b.Hash(test.password)

			// Assert
			if err != test.wantErr {
				t.Fatalf("Hash() error = %v, want %v", err, test.wantErr)
			}
			if test.wantErr == nil {
				if hash == "" {
					t.Error("Hash() returned empty hash")
				}
				if hash == test.password {
					t.Error("Hash() must never return the plaintext")
				}
				if !strings.HasPrefix(hash, "$2") {
					t.Errorf("Hash() = %q, want bcrypt format", hash)
				}
			}
		})
	}
}

func TestBcrypt_Hash_UniqueSalts(t *testing.T) {
	// Arrange
	b := NewBcrypt(4)
	password := "samePassword"

	// Act
	hash1, _ := b.Hash(password)
	hash2, _ := b.Hash(password)

	// Assert
	if hash1 == hash2 {
		t.Error("Hash() should generate different hashes with unique salts")
	}
}

func TestBcrypt_Verify(t *testing.T) {
	tests := []struct {
		name     string
		password string
		attempt  string
		wantOk   bool
	}{
		{name: "correct password", password: "correctPassword", attempt: "correctPassword", wantOk: true},
		{name: "wrong password", password: "correctPassword", attempt: "wrongPassword", wantOk: false},
		{name: "case sensitive", password: "correctPassword", attempt: "correctpassword", wantOk: false},
		{name: "extra character", password: "correctPassword", attempt: "correctPassword1", wantOk: false},
		{name: "empty attempt", password: "correctPassword", attempt: "", wantOk: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			b := NewBcrypt(4)
			hash, err := b.Hash(test.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}

			// Act
			ok := b.Verify(test.attempt, hash)

			// Assert
			if ok != test.wantOk {
				t.Errorf("Verify() = %v, want %v", ok, test.wantOk)
			}
		})
	}
}

func TestBcrypt_Verify_MalformedHashes(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "not a hash", hash: "invalid-hash"},
		{name: "wrong algorithm", hash: "$argon2id$v=19$m=65536,t=3,p=2$salt$hash"},
		{name: "truncated", hash: "$2a$10$tooshort"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			b := NewBcrypt(4)

			// Act
			ok := b.Verify("anyPassword", test.hash)

			// Assert: malformed hashes fail closed, without panicking
			if ok {
				t.Error("Verify() = true for malformed hash, want false")
			}
		})
	}
}
