package password_test

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/chenawi66/chefhu-2026/shared/password"
)

func TestConstants(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("validPassword123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if hash == "" || hash == "validPassword123" {
		t.Error("expected a non-empty hash different from the input")
	}

	if err := password.Verify("validPassword123", hash); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}

	if err := password.Verify("wrongPassword", hash); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestHash_EmptyPassword(t *testing.T) {
	if _, err := password.Hash(""); err == nil {
		t.Error("expected an error for an empty password")
	}
}

func TestVerify_EmptyInputs(t *testing.T) {
	if err := password.Verify("", "hash"); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for empty password, got %v", err)
	}
	if err := password.Verify("secret", ""); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for empty hash, got %v", err)
	}
}

func TestVerifyPlain(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected string
		wantErr  bool
	}{
		{
			name:     "matching secrets",
			password: "secret",
			expected: "secret",
		},
		{
			name:     "mismatched secrets",
			password: "secret",
			expected: "other",
			wantErr:  true,
		},
		{
			name:     "empty password",
			password: "",
			expected: "secret",
			wantErr:  true,
		},
		{
			name:     "empty expected value",
			password: "secret",
			expected: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.VerifyPlain(tt.password, tt.expected)

			if tt.wantErr && !errors.Is(err, password.ErrInvalidPassword) {
				t.Errorf("expected ErrInvalidPassword, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}
