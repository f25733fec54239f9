package securestore

import (
	"encoding/json"
)

// envelopeVersion is the current storage envelope format version.
const envelopeVersion = 1

// storageEnvelope is the persisted form of an encrypted value. Field names
// ("encryptedData", "iv", "salt") match the envelope format used by the
// existing browser clients, so entries written by either side decrypt on
// the other.
//
// Version and KDF were added in v1 of the Go SDK so that a future change of
// derivation defaults does not break previously stored data. Envelopes
// written before that carry neither field and decrypt with the fixed
// defaults.
type storageEnvelope struct {
	Version       int          `json:"v,omitempty"`
	EncryptedData string       `json:"encryptedData"`
	IV            string       `json:"iv"`
	Salt          string       `json:"salt"`
	KDF           *envelopeKDF `json:"kdf,omitempty"`
}

// envelopeKDF records the key-derivation parameters an envelope was written
// with.
type envelopeKDF struct {
	Iterations int `json:"iter"`
	KeyLength  int `json:"keyLen"`
}

// newStorageEnvelope wraps an encryption result for persistence.
func newStorageEnvelope(result *EncryptionResult, params DerivationParams) *storageEnvelope {
	return &storageEnvelope{
		Version:       envelopeVersion,
		EncryptedData: result.Ciphertext,
		IV:            result.Nonce,
		Salt:          result.Salt,
		KDF: &envelopeKDF{
			Iterations: params.Iterations,
			KeyLength:  params.KeyLength,
		},
	}
}

// parseStorageEnvelope parses a serialized envelope. Malformed records are
// treated exactly like undecryptable ones so that corruption of the stored
// record and tampering with its fields are indistinguishable to callers.
func parseStorageEnvelope(raw string) (*storageEnvelope, error) {
	var env storageEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, &DecryptionError{}
	}

	if env.EncryptedData == "" || env.IV == "" || env.Salt == "" {
		return nil, &DecryptionError{}
	}

	return &env, nil
}

// params returns the derivation parameters to decrypt this envelope with,
// falling back to the session defaults for envelopes that predate the KDF
// field.
func (e *storageEnvelope) params(fallback DerivationParams) DerivationParams {
	if e.KDF == nil || e.KDF.Iterations <= 0 || e.KDF.KeyLength <= 0 {
		return fallback
	}
	return DerivationParams{
		Iterations: e.KDF.Iterations,
		KeyLength:  e.KDF.KeyLength,
	}
}

// encode serializes the envelope for persistence.
func (e *storageEnvelope) encode() (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
