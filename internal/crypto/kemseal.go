package crypto

import (
	"fmt"
)

// SealedPayload is the wire form of a sealed backup: a store export
// encrypted to a recipient's ML-KEM-768 public key.
type SealedPayload struct {
	// V is the sealed backup format version.
	V int `json:"v"`
	// Algs is the algorithm suite identifier ("ML-KEM-768:AES-256-GCM:HKDF-SHA-512").
	Algs string `json:"algs"`
	// CtKem is the ML-KEM-768 ciphertext (base64url-encoded).
	CtKem string `json:"ct_kem"`
	// Nonce is the AES-GCM nonce (base64url-encoded).
	Nonce string `json:"nonce"`
	// AAD is the additional authenticated data (base64url-encoded).
	AAD string `json:"aad"`
	// Ciphertext is the AES-GCM encrypted content (base64url-encoded).
	Ciphertext string `json:"ciphertext"`
}

// SealedPayloadVersion is the current sealed backup format version.
const SealedPayloadVersion = 1

// Seal encrypts plaintext to the recipient's ML-KEM-768 public key.
//
// The sealing process:
//  1. ML-KEM-768 encapsulation against the recipient public key
//  2. HKDF-SHA-512 key derivation from the shared secret, AAD and KEM ciphertext
//  3. AES-256-GCM encryption of the plaintext with a fresh nonce and the AAD
func Seal(plaintext, aad, recipientPublicKey []byte) (*SealedPayload, error) {
	ctKem, sharedSecret, err := Encapsulate(recipientPublicKey)
	if err != nil {
		return nil, err
	}

	aesKey, err := DeriveBackupKey(sharedSecret, aad, ctKem)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	nonce, err := NewNonce()
	if err != nil {
		return nil, err
	}

	aesGCM, err := newGCM(aesKey, nonce)
	if err != nil {
		return nil, err
	}

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, aad)

	return &SealedPayload{
		V:          SealedPayloadVersion,
		Algs:       BackupCiphersuite,
		CtKem:      ToBase64URL(ctKem),
		Nonce:      ToBase64URL(nonce),
		AAD:        ToBase64URL(aad),
		Ciphertext: ToBase64URL(ciphertext),
	}, nil
}

// Open decrypts a sealed payload using the recipient's keypair.
// It is the exact inverse of [Seal]; any tampering with the payload causes
// ErrDecryptionFailed without producing plaintext.
func Open(payload *SealedPayload, keypair *Keypair) ([]byte, error) {
	if payload.V != SealedPayloadVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidPayload, payload.V)
	}

	if payload.Algs != BackupCiphersuite {
		return nil, fmt.Errorf("%w: unsupported algorithm suite %q", ErrInvalidPayload, payload.Algs)
	}

	ctKem, err := FromBase64URL(payload.CtKem)
	if err != nil {
		return nil, fmt.Errorf("%w: decode ct_kem: %v", ErrInvalidPayload, err)
	}

	nonce, err := FromBase64URL(payload.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: decode nonce: %v", ErrInvalidPayload, err)
	}

	aad, err := FromBase64URL(payload.AAD)
	if err != nil {
		return nil, fmt.Errorf("%w: decode aad: %v", ErrInvalidPayload, err)
	}

	ciphertext, err := FromBase64URL(payload.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: decode ciphertext: %v", ErrInvalidPayload, err)
	}

	sharedSecret, err := keypair.Decapsulate(ctKem)
	if err != nil {
		return nil, fmt.Errorf("decapsulate: %w", err)
	}

	aesKey, err := DeriveBackupKey(sharedSecret, aad, ctKem)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	aesGCM, err := newGCM(aesKey, nonce)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
