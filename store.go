package securestore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/securestore/securestore-go/storage"
)

// Store is one encrypted key-value namespace bound to a client's session.
// Values are encrypted before they reach the storage medium and decrypted
// on the way out; the medium only ever sees serialized envelopes under
// namespaced keys.
//
// Per-key operations are as atomic as the underlying medium; concurrent
// SetItem calls to the same key follow last-write-wins semantics. No
// operation spans multiple keys transactionally.
type Store struct {
	client  *Client
	backend storage.Storage
}

// SetItem encrypts value under the session password and persists it under
// the namespaced key. The value must already be serialized text; use SetJSON
// for application objects so that serialization errors surface explicitly.
func (s *Store) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	password, err := s.client.currentPassword("setItem")
	if err != nil {
		return err
	}

	result, err := encryptWithParams(value, password, s.client.params)
	if err != nil {
		return err
	}

	record, err := newStorageEnvelope(result, s.client.params).encode()
	if err != nil {
		return &EncryptionError{Err: err}
	}

	if err := s.backend.Set(ctx, s.client.prefix+key, record); err != nil {
		return &StorageError{Op: "set", Key: key, Err: err}
	}

	return nil
}

// GetItem reads, decrypts and returns the value stored under key. An absent
// entry returns ErrItemNotFound; an entry that cannot be decrypted (wrong
// password or corrupted data) returns a DecryptionError, and the caller
// decides whether to purge it.
func (s *Store) GetItem(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	password, err := s.client.currentPassword("getItem")
	if err != nil {
		return "", err
	}

	record, ok, err := s.backend.Get(ctx, s.client.prefix+key)
	if err != nil {
		return "", &StorageError{Op: "get", Key: key, Err: err}
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrItemNotFound, key)
	}

	env, err := parseStorageEnvelope(record)
	if err != nil {
		return "", err
	}

	return decryptWithParams(env.EncryptedData, password, env.IV, env.Salt, env.params(s.client.params))
}

// RemoveItem deletes the entry stored under key. Removing an absent entry
// is not an error.
func (s *Store) RemoveItem(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	if _, err := s.client.currentPassword("removeItem"); err != nil {
		return err
	}

	if err := s.backend.Remove(ctx, s.client.prefix+key); err != nil {
		return &StorageError{Op: "remove", Key: key, Err: err}
	}

	return nil
}

// Clear deletes every entry under the namespace prefix, leaving unrelated
// entries in the same medium untouched.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.client.currentPassword("clear"); err != nil {
		return err
	}

	keys, err := s.backend.Keys(ctx, s.client.prefix)
	if err != nil {
		return &StorageError{Op: "keys", Err: err}
	}

	for _, key := range keys {
		if err := s.backend.Remove(ctx, key); err != nil {
			return &StorageError{Op: "remove", Key: key, Err: err}
		}
	}

	return nil
}

// SetJSON marshals value and stores it via SetItem. Marshal failures are
// reported directly rather than being silently swallowed.
func (s *Store) SetJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value: %w", err)
	}
	return s.SetItem(ctx, key, string(data))
}

// GetJSON reads the value stored under key and unmarshals it into dst.
func (s *Store) GetJSON(ctx context.Context, key string, dst any) error {
	data, err := s.GetItem(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return fmt.Errorf("unmarshal value: %w", err)
	}
	return nil
}
