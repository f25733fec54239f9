package securestore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/securestore/securestore-go/internal/crypto"
)

// RecipientKeypair is an ML-KEM-768 keypair identifying a backup recipient.
// Both fields are URL-safe base64 without padding.
// WARNING: the secret key decrypts every backup sealed to it - handle it
// like a master password.
type RecipientKeypair struct {
	// PublicKey is the ML-KEM-768 public key (1184 bytes decoded). Safe to
	// distribute; anyone holding it can seal backups to this recipient.
	PublicKey string `json:"publicKey"`
	// SecretKey is the ML-KEM-768 secret key (2400 bytes decoded).
	SecretKey string `json:"secretKey"`
}

// GenerateRecipientKeypair creates a new backup recipient keypair.
func GenerateRecipientKeypair() (*RecipientKeypair, error) {
	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return nil, fmt.Errorf("generate keypair: %w", err)
	}

	return &RecipientKeypair{
		PublicKey: kp.PublicKeyB64,
		SecretKey: crypto.ToBase64URL(kp.SecretKey),
	}, nil
}

// SealedBackup is a store export encrypted to a recipient's public key.
// Unlike a plain export it is safe to hand to parties who must not read the
// envelopes' metadata: only the recipient's secret key opens it.
type SealedBackup struct {
	// Version is the sealed backup format version.
	Version int `json:"version"`
	// Algs is the algorithm suite identifier.
	Algs string `json:"algs"`
	// CtKem is the ML-KEM-768 ciphertext (base64url).
	CtKem string `json:"ctKem"`
	// Nonce is the AES-GCM nonce (base64url).
	Nonce string `json:"nonce"`
	// AAD is the additional authenticated data (base64url); it binds the
	// backup to the namespace prefix it was taken from.
	AAD string `json:"aad"`
	// Ciphertext is the sealed export (base64url).
	Ciphertext string `json:"ciphertext"`
}

// SealBackup encrypts a store export to the recipient's public key. The
// namespace prefix is bound into the AAD, so a backup of one namespace
// cannot be passed off as a backup of another.
func SealBackup(data *ExportedStore, recipientPublicKey string) (*SealedBackup, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil export", ErrInvalidExportData)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	publicKey, err := crypto.FromBase64URL(recipientPublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecipientKey, err)
	}

	plaintext, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal export data: %w", err)
	}

	payload, err := crypto.Seal(plaintext, []byte("prefix:"+data.Prefix), publicKey)
	if err != nil {
		if isKeyMaterialError(err) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecipientKey, err)
		}
		return nil, &EncryptionError{Err: err}
	}

	return &SealedBackup{
		Version:    payload.V,
		Algs:       payload.Algs,
		CtKem:      payload.CtKem,
		Nonce:      payload.Nonce,
		AAD:        payload.AAD,
		Ciphertext: payload.Ciphertext,
	}, nil
}

// OpenBackup decrypts a sealed backup with the recipient's secret key and
// returns the validated store export, ready for Store.Import. Tampering
// with any field yields an undifferentiated DecryptionError.
func OpenBackup(backup *SealedBackup, recipientSecretKey string) (*ExportedStore, error) {
	if backup == nil {
		return nil, fmt.Errorf("%w: nil backup", ErrInvalidExportData)
	}

	secretKey, err := crypto.FromBase64URL(recipientSecretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecipientKey, err)
	}

	keypair, err := crypto.KeypairFromSecretKey(secretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecipientKey, err)
	}

	payload := &crypto.SealedPayload{
		V:          backup.Version,
		Algs:       backup.Algs,
		CtKem:      backup.CtKem,
		Nonce:      backup.Nonce,
		AAD:        backup.AAD,
		Ciphertext: backup.Ciphertext,
	}

	plaintext, err := crypto.Open(payload, keypair)
	if err != nil {
		return nil, &DecryptionError{}
	}

	var data ExportedStore
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return nil, &DecryptionError{}
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}

	return &data, nil
}

// isKeyMaterialError reports whether err stems from malformed recipient key
// material rather than the sealing operation itself.
func isKeyMaterialError(err error) bool {
	return errors.Is(err, crypto.ErrInvalidPublicKeySize) ||
		errors.Is(err, crypto.ErrInvalidSecretKeySize)
}
