package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned when decryption fails. Wrong key,
	// tampered ciphertext and truncated input all collapse into this error.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEmptyPassword is returned when key derivation is attempted with an
	// empty password.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrInvalidSaltSize is returned when the salt size is invalid.
	ErrInvalidSaltSize = errors.New("invalid salt size")

	// ErrInvalidIterations is returned when the iteration count is not positive.
	ErrInvalidIterations = errors.New("invalid iteration count")

	// ErrInvalidKeyLength is returned when the requested key length is not positive.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidSecretKeySize is returned when the recipient secret key size is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when the recipient public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidCiphertextSize is returned when the KEM ciphertext size is invalid.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrInvalidPayload is returned when a sealed backup payload is
	// structurally invalid: missing fields, bad encoding, or an
	// unrecognized algorithm suite.
	ErrInvalidPayload = errors.New("invalid payload")
)
