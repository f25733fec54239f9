package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// EncryptAES encrypts data using AES-256-GCM.
// Returns: ciphertext || tag (16 bytes). The nonce is NOT prepended; it
// travels separately in the storage envelope.
func EncryptAES(key, nonce, plaintext []byte) ([]byte, error) {
	aesGCM, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	return aesGCM.Seal(nil, nonce, plaintext, nil), nil
}

// DecryptAES decrypts AES-256-GCM ciphertext produced by EncryptAES.
// Any authentication failure is reported as ErrDecryptionFailed with no
// plaintext output; wrong key and tampered data are indistinguishable.
func DecryptAES(key, nonce, ciphertextWithTag []byte) ([]byte, error) {
	aesGCM, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	if len(ciphertextWithTag) < AESTagSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertextWithTag, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

// newGCM validates sizes and builds the AES-GCM AEAD.
func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	switch len(key) {
	case 16, 24, AESKeySize:
	default:
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}

	if len(nonce) != AESNonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), AESNonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aesGCM, nil
}
