package securestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// ExportVersion is the current export format version.
const ExportVersion = 1

// ExportedStore contains every entry of one store namespace in its persisted
// (encrypted) form. Entries stay sealed under the master password, so an
// export never requires or reveals key material; it can be moved between
// media and re-imported anywhere the same password is known.
type ExportedStore struct {
	// Version is the export format version. MUST be 1.
	Version int `json:"version"`
	// Prefix is the namespace prefix the entries were stored under.
	Prefix string `json:"prefix"`
	// Entries maps original (un-prefixed) keys to serialized envelopes.
	Entries map[string]string `json:"entries"`
	// ExportedAt is the export timestamp. Informational only.
	ExportedAt time.Time `json:"exportedAt"`
}

// Validate checks that the exported data is structurally sound: supported
// version, non-empty prefix, and every entry parseable as a storage envelope.
func (e *ExportedStore) Validate() error {
	if e.Version != ExportVersion {
		return fmt.Errorf("%w: unsupported version %d, expected %d", ErrInvalidExportData, e.Version, ExportVersion)
	}

	if e.Prefix == "" {
		return fmt.Errorf("%w: prefix is required", ErrInvalidExportData)
	}

	for key, record := range e.Entries {
		if key == "" {
			return fmt.Errorf("%w: empty entry key", ErrInvalidExportData)
		}
		if _, err := parseStorageEnvelope(record); err != nil {
			return fmt.Errorf("%w: entry %q is not a valid envelope", ErrInvalidExportData, key)
		}
	}

	return nil
}

// Export snapshots every entry in this store's namespace. The session must
// be initialized, matching the gating of every other store operation, even
// though the snapshot itself contains only ciphertext.
func (s *Store) Export(ctx context.Context) (*ExportedStore, error) {
	if _, err := s.client.currentPassword("export"); err != nil {
		return nil, err
	}

	keys, err := s.backend.Keys(ctx, s.client.prefix)
	if err != nil {
		return nil, &StorageError{Op: "keys", Err: err}
	}

	entries := make(map[string]string, len(keys))
	for _, key := range keys {
		record, ok, err := s.backend.Get(ctx, key)
		if err != nil {
			return nil, &StorageError{Op: "get", Key: key, Err: err}
		}
		if !ok {
			// Entry was removed between Keys and Get; skip it.
			continue
		}
		entries[strings.TrimPrefix(key, s.client.prefix)] = record
	}

	return &ExportedStore{
		Version:    ExportVersion,
		Prefix:     s.client.prefix,
		Entries:    entries,
		ExportedAt: time.Now().UTC(),
	}, nil
}

// Import writes the exported entries into this store's namespace under its
// own prefix. Existing entries with the same keys are overwritten. Imported
// envelopes decrypt only if this client's session uses the password they
// were originally encrypted under.
func (s *Store) Import(ctx context.Context, data *ExportedStore) error {
	if data == nil {
		return fmt.Errorf("%w: nil export", ErrInvalidExportData)
	}

	if _, err := s.client.currentPassword("import"); err != nil {
		return err
	}

	if err := data.Validate(); err != nil {
		return err
	}

	for key, record := range data.Entries {
		if err := s.backend.Set(ctx, s.client.prefix+key, record); err != nil {
			return &StorageError{Op: "set", Key: key, Err: err}
		}
	}

	return nil
}

// ExportToFile exports the store to a JSON file with secure permissions (0600).
func (s *Store) ExportToFile(ctx context.Context, filePath string) error {
	data, err := s.Export(ctx)
	if err != nil {
		return err
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export data: %w", err)
	}

	if err := os.WriteFile(filePath, jsonData, 0600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// ImportFromFile imports store entries from a JSON file produced by
// ExportToFile.
func (s *Store) ImportFromFile(ctx context.Context, filePath string) error {
	jsonData, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	var data ExportedStore
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExportData, err)
	}

	return s.Import(ctx, &data)
}
