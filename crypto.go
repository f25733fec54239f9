package securestore

import (
	"unicode/utf8"

	"github.com/securestore/securestore-go/internal/crypto"
)

// DerivationParams are the PBKDF2 parameters shared by both ends of a round
// trip. Envelopes written by the store carry them; bare Encrypt/Decrypt
// calls must agree on them out of band.
type DerivationParams struct {
	// Iterations is the PBKDF2 iteration count.
	Iterations int
	// KeyLength is the derived key length in bytes.
	KeyLength int
}

// DefaultDerivationParams returns the documented defaults: 100,000
// iterations and a 32-byte (AES-256) key.
func DefaultDerivationParams() DerivationParams {
	return DerivationParams{
		Iterations: crypto.DefaultIterations,
		KeyLength:  crypto.AESKeySize,
	}
}

// EncryptionResult holds the output of Encrypt. All fields are standard
// base64 text, and all three are required together to decrypt; there is no
// partial decryption.
type EncryptionResult struct {
	// Ciphertext is the AES-256-GCM ciphertext with the authentication tag
	// appended.
	Ciphertext string
	// Nonce is the single-use AES-GCM nonce generated for this result.
	Nonce string
	// Salt is the single-use key-derivation salt generated for this result.
	Salt string
}

// Encrypt encrypts plaintext under a key derived from password with the
// default derivation parameters. Every call generates a fresh random salt
// and nonce, so encrypting the same plaintext twice yields unrelated results.
func Encrypt(plaintext, password string) (*EncryptionResult, error) {
	return encryptWithParams(plaintext, password, DefaultDerivationParams())
}

func encryptWithParams(plaintext, password string, params DerivationParams) (*EncryptionResult, error) {
	if password == "" {
		return nil, &EncryptionError{Err: ErrEmptyPassword}
	}

	salt, err := crypto.NewSalt()
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	key, err := crypto.DeriveKey(password, salt, params.Iterations, params.KeyLength)
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	nonce, err := crypto.NewNonce()
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	ciphertext, err := crypto.EncryptAES(key, nonce, []byte(plaintext))
	if err != nil {
		return nil, &EncryptionError{Err: err}
	}

	return &EncryptionResult{
		Ciphertext: crypto.ToBase64(ciphertext),
		Nonce:      crypto.ToBase64(nonce),
		Salt:       crypto.ToBase64(salt),
	}, nil
}

// Decrypt recovers the plaintext from a previous Encrypt call. All three
// base64 inputs and the original password are required. Every failure mode
// (malformed encoding, wrong password, tampered data, non-UTF-8 output)
// returns the same undifferentiated DecryptionError.
func Decrypt(ciphertext, password, nonce, salt string) (string, error) {
	return decryptWithParams(ciphertext, password, nonce, salt, DefaultDerivationParams())
}

func decryptWithParams(ciphertext, password, nonce, salt string, params DerivationParams) (string, error) {
	ciphertextBytes, err := crypto.FromBase64(ciphertext)
	if err != nil {
		return "", &DecryptionError{}
	}

	nonceBytes, err := crypto.FromBase64(nonce)
	if err != nil || len(nonceBytes) != crypto.AESNonceSize {
		return "", &DecryptionError{}
	}

	saltBytes, err := crypto.FromBase64(salt)
	if err != nil || len(saltBytes) != crypto.SaltSize {
		return "", &DecryptionError{}
	}

	key, err := crypto.DeriveKey(password, saltBytes, params.Iterations, params.KeyLength)
	if err != nil {
		return "", &DecryptionError{}
	}

	plaintext, err := crypto.DecryptAES(key, nonceBytes, ciphertextBytes)
	if err != nil {
		return "", &DecryptionError{}
	}

	if !utf8.Valid(plaintext) {
		return "", &DecryptionError{}
	}

	return string(plaintext), nil
}
