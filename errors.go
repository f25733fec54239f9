package securestore

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrNotInitialized is returned when a store operation is attempted
	// before Initialize has succeeded.
	ErrNotInitialized = errors.New("secure store is not initialized")

	// ErrAlreadyInitialized is returned when Initialize is called with a
	// different password while a session is active. Re-keying requires an
	// explicit Teardown first.
	ErrAlreadyInitialized = errors.New("secure store is already initialized with a different password")

	// ErrEmptyPassword is returned when Initialize or Encrypt is called
	// with an empty password.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrEmptyKey is returned when a store operation is called with an
	// empty item key.
	ErrEmptyKey = errors.New("item key must not be empty")

	// ErrItemNotFound is returned by GetItem when no entry exists under
	// the requested key.
	ErrItemNotFound = errors.New("item not found")

	// ErrEncryptionFailed is returned when an encryption result cannot be
	// produced.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed is returned when stored data cannot be recovered.
	// Wrong password, tampered data and malformed input are deliberately
	// indistinguishable.
	ErrDecryptionFailed = errors.New("unable to access data")

	// ErrInvalidExportData is returned when exported store data fails validation.
	ErrInvalidExportData = errors.New("invalid export data")

	// ErrInvalidRecipientKey is returned when a backup recipient key is malformed.
	ErrInvalidRecipientKey = errors.New("invalid recipient key")
)

// SecureStoreError is implemented by all SDK errors.
type SecureStoreError interface {
	error
	SecureStoreError() // marker method
}

// EncryptionError represents a failure while producing an encryption result.
type EncryptionError struct {
	Err error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("encryption failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncryptionError) Is(target error) bool {
	return target == ErrEncryptionFailed
}

// SecureStoreError implements the SecureStoreError interface.
func (e *EncryptionError) SecureStoreError() {}

// DecryptionError represents a failure to recover plaintext. It carries no
// detail: callers must not be able to tell a wrong password from corrupted
// or tampered data, and user-facing messages should stay generic.
type DecryptionError struct{}

func (e *DecryptionError) Error() string {
	return "unable to access data"
}

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryptionFailed
}

// SecureStoreError implements the SecureStoreError interface.
func (e *DecryptionError) SecureStoreError() {}

// InitializationError indicates a store operation attempted without an
// initialized session.
type InitializationError struct {
	Op string
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("%s: secure store is not initialized", e.Op)
}

// Is implements errors.Is for sentinel error matching.
func (e *InitializationError) Is(target error) bool {
	return target == ErrNotInitialized
}

// SecureStoreError implements the SecureStoreError interface.
func (e *InitializationError) SecureStoreError() {}

// StorageError represents a failure of the underlying storage medium.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// SecureStoreError implements the SecureStoreError interface.
func (e *StorageError) SecureStoreError() {}
