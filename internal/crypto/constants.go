package crypto

const (
	// SaltSize is the size of a key-derivation salt in bytes.
	SaltSize = 16

	// DefaultIterations is the PBKDF2 iteration count used when the caller
	// does not override it. Both ends of a round trip must use the same
	// count; it is not recoverable from the ciphertext.
	DefaultIterations = 100000

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// MLKEMPublicKeySize is the size of an ML-KEM-768 public key in bytes.
	MLKEMPublicKeySize = 1184
	// MLKEMSecretKeySize is the size of an ML-KEM-768 secret key in bytes.
	MLKEMSecretKeySize = 2400
	// MLKEMCiphertextSize is the size of an ML-KEM-768 ciphertext in bytes.
	MLKEMCiphertextSize = 1088
	// MLKEMSharedKeySize is the size of the shared secret from ML-KEM-768 in bytes.
	MLKEMSharedKeySize = 32

	// PublicKeyOffset is the byte offset where the public key is embedded
	// within an ML-KEM-768 secret key.
	PublicKeyOffset = 1152

	// BackupContext is the context string used in HKDF key derivation for
	// sealed backups, for domain separation.
	BackupContext = "securestore:backup:v1"
)

// BackupCiphersuite is the canonical string representation of the sealed
// backup algorithm suite.
var BackupCiphersuite = "ML-KEM-768:AES-256-GCM:HKDF-SHA-512"
