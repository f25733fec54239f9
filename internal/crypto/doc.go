// Package crypto provides the cryptographic primitives for the SecureStore
// envelope format and the sealed backup format.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - PBKDF2-HMAC-SHA-256 (RFC 8018): Password-based key derivation for the
//     storage envelope. The iteration count (default 100,000) makes offline
//     password guessing expensive.
//
//   - AES-256-GCM: Authenticated encryption with associated data (AEAD)
//     for all stored values. Provides confidentiality and integrity in a
//     single primitive; no separate MAC step is needed.
//
//   - ML-KEM-768 (NIST FIPS 203): Post-quantum key encapsulation mechanism
//     used by sealed backups to encrypt a store export to a recipient's
//     public key.
//
//   - HKDF-SHA-512 (RFC 5869): Key derivation for sealed backups, turning a
//     KEM shared secret into an AES key with domain separation.
//
// # Security Model
//
// The envelope scheme provides:
//
//   - Confidentiality: only the holder of the master password can recover
//     stored values.
//   - Integrity: tampering with ciphertext, nonce or salt causes decryption
//     to fail with a single undifferentiated error.
//   - Per-value freshness: every encryption uses a new random salt and a new
//     random nonce, so identical plaintexts produce unrelated ciphertexts.
//
// # Critical Security Notes
//
// AES-GCM nonces MUST be unique for each encryption with the same key. Nonce
// reuse completely breaks the security of AES-GCM, allowing attackers to
// recover the authentication key and forge messages. This package never
// reuses a nonce by construction: [NewSalt] and [NewNonce] draw fresh random
// values for every call, and a fresh salt means a fresh derived key as well.
//
// Decryption failures are collapsed into [ErrDecryptionFailed]. Callers must
// not attempt to distinguish a wrong password from corrupted data; the two
// cases are deliberately indistinguishable to prevent oracle attacks.
//
// # Base64 Encoding
//
// The package provides base64 encoding functions for cryptographic data:
//
//   - [ToBase64]/[FromBase64]: Standard base64 with padding (RFC 4648 §4).
//     Used for all storage envelope fields, which are shared with non-Go
//     clients of the same envelope format.
//
//   - [ToBase64URL]/[FromBase64URL]: URL-safe base64 without padding
//     (RFC 4648 §5). Used for key material in export and backup formats.
package crypto
