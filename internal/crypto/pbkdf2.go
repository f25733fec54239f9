package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey derives a symmetric key from a password and salt using
// PBKDF2-HMAC-SHA-256. The output is deterministic for identical inputs;
// the iteration count and key length must match between encryption and
// decryption because they are not stored alongside the ciphertext.
func DeriveKey(password string, salt []byte, iterations, keyLen int) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}

	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSaltSize, len(salt), SaltSize)
	}

	if iterations <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, iterations)
	}

	if keyLen <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeyLength, keyLen)
	}

	return pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New), nil
}
