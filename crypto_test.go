package securestore

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestEncrypt_Decrypt_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
		password  string
	}{
		{"simple", "hello world", "pw12345"},
		{"empty plaintext", "", "pw12345"},
		{"unicode", "héllo wörld 日本語 🔐", "пароль"},
		{"json", `{"token":"abc","expires":1735689600}`, "correct horse battery staple"},
		{"long", strings.Repeat("0123456789abcdef", 256), "p"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Encrypt(tt.plaintext, tt.password)
			if err != nil {
				t.Fatalf("Encrypt() error = %v", err)
			}

			plaintext, err := Decrypt(result.Ciphertext, tt.password, result.Nonce, result.Salt)
			if err != nil {
				t.Fatalf("Decrypt() error = %v", err)
			}

			if plaintext != tt.plaintext {
				t.Errorf("Decrypt() = %q, want %q", plaintext, tt.plaintext)
			}
		})
	}
}

func TestEncrypt_FieldLengths(t *testing.T) {
	result, err := Encrypt("hello world", "pw12345")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	salt, err := base64.StdEncoding.DecodeString(result.Salt)
	if err != nil {
		t.Fatalf("salt is not valid base64: %v", err)
	}
	if len(salt) != 16 {
		t.Errorf("decoded salt length = %d, want 16", len(salt))
	}

	nonce, err := base64.StdEncoding.DecodeString(result.Nonce)
	if err != nil {
		t.Fatalf("nonce is not valid base64: %v", err)
	}
	if len(nonce) != 12 {
		t.Errorf("decoded nonce length = %d, want 12", len(nonce))
	}

	ciphertext, err := base64.StdEncoding.DecodeString(result.Ciphertext)
	if err != nil {
		t.Fatalf("ciphertext is not valid base64: %v", err)
	}
	// "hello world" (11 bytes) + 16-byte tag
	if len(ciphertext) != 11+16 {
		t.Errorf("decoded ciphertext length = %d, want %d", len(ciphertext), 11+16)
	}
}

func TestEncrypt_Uniqueness(t *testing.T) {
	a, err := Encrypt("same plaintext", "same password")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encrypt("same plaintext", "same password")
	if err != nil {
		t.Fatal(err)
	}

	if a.Salt == b.Salt {
		t.Error("two encryptions produced the same salt")
	}
	if a.Nonce == b.Nonce {
		t.Error("two encryptions produced the same nonce")
	}
	if a.Ciphertext == b.Ciphertext {
		t.Error("two encryptions produced the same ciphertext")
	}
}

func TestEncrypt_EmptyPassword(t *testing.T) {
	_, err := Encrypt("data", "")
	if !errors.Is(err, ErrEncryptionFailed) {
		t.Errorf("expected ErrEncryptionFailed, got %v", err)
	}
	if !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("expected wrapped ErrEmptyPassword, got %v", err)
	}
}

func TestDecrypt_WrongPassword(t *testing.T) {
	result, err := Encrypt("secret data", "right password")
	if err != nil {
		t.Fatal(err)
	}

	_, err = Decrypt(result.Ciphertext, "wrong password", result.Nonce, result.Salt)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestDecrypt_TamperedFields(t *testing.T) {
	result, err := Encrypt("secret data", "pw12345")
	if err != nil {
		t.Fatal(err)
	}

	flip := func(s string) string {
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			t.Fatal(err)
		}
		raw[0] ^= 0x01
		return base64.StdEncoding.EncodeToString(raw)
	}

	tests := []struct {
		name                   string
		ciphertext, nonce, salt string
	}{
		{"ciphertext", flip(result.Ciphertext), result.Nonce, result.Salt},
		{"nonce", result.Ciphertext, flip(result.Nonce), result.Salt},
		{"salt", result.Ciphertext, result.Nonce, flip(result.Salt)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decrypt(tt.ciphertext, "pw12345", tt.nonce, tt.salt)
			if !errors.Is(err, ErrDecryptionFailed) {
				t.Errorf("expected ErrDecryptionFailed, got %v", err)
			}
		})
	}
}

func TestDecrypt_MalformedInputs(t *testing.T) {
	result, err := Encrypt("secret data", "pw12345")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name                   string
		ciphertext, nonce, salt string
		password               string
	}{
		{"bad ciphertext encoding", "not base64!", result.Nonce, result.Salt, "pw12345"},
		{"bad nonce encoding", result.Ciphertext, "not base64!", result.Salt, "pw12345"},
		{"bad salt encoding", result.Ciphertext, result.Nonce, "not base64!", "pw12345"},
		{"short nonce", result.Ciphertext, base64.StdEncoding.EncodeToString([]byte("short")), result.Salt, "pw12345"},
		{"short salt", result.Ciphertext, result.Nonce, base64.StdEncoding.EncodeToString([]byte("short")), "pw12345"},
		{"empty password", result.Ciphertext, result.Nonce, result.Salt, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decrypt(tt.ciphertext, tt.password, tt.nonce, tt.salt)
			if !errors.Is(err, ErrDecryptionFailed) {
				t.Errorf("expected ErrDecryptionFailed, got %v", err)
			}
		})
	}
}

func TestDecrypt_ErrorCarriesNoDetail(t *testing.T) {
	result, err := Encrypt("secret data", "pw12345")
	if err != nil {
		t.Fatal(err)
	}

	_, wrongPw := Decrypt(result.Ciphertext, "oops", result.Nonce, result.Salt)
	_, badInput := Decrypt("not base64!", "pw12345", result.Nonce, result.Salt)

	if wrongPw == nil || badInput == nil {
		t.Fatal("expected errors from both cases")
	}
	if wrongPw.Error() != badInput.Error() {
		t.Errorf("error messages differ: %q vs %q", wrongPw.Error(), badInput.Error())
	}
}

func TestEncryptionResult_MarkerInterface(t *testing.T) {
	_, err := Encrypt("data", "")
	var ssErr SecureStoreError
	if !errors.As(err, &ssErr) {
		t.Error("EncryptionError does not implement SecureStoreError")
	}
}
