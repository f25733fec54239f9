package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used for salts, nonces and key generation.
// It defaults to crypto/rand and can be overridden for testing.
var randReader io.Reader = rand.Reader

// RandomBytes returns n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(randReader, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// NewSalt returns a fresh random key-derivation salt.
func NewSalt() ([]byte, error) {
	return RandomBytes(SaltSize)
}

// NewNonce returns a fresh random AES-GCM nonce.
func NewNonce() ([]byte, error) {
	return RandomBytes(AESNonceSize)
}
