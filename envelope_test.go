package securestore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/securestore/securestore-go/storage"
)

func TestEnvelope_CarriesDerivationParams(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()

	// Write with a non-default iteration count
	writer, err := New(backend, WithIterations(5000))
	if err != nil {
		t.Fatal(err)
	}
	if err := writer.Initialize("master"); err != nil {
		t.Fatal(err)
	}
	if err := writer.Durable().SetItem(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}

	record, _, err := backend.Get(ctx, DefaultPrefix+"k")
	if err != nil {
		t.Fatal(err)
	}

	var env storageEnvelope
	if err := json.Unmarshal([]byte(record), &env); err != nil {
		t.Fatal(err)
	}
	if env.Version != envelopeVersion {
		t.Errorf("envelope version = %d, want %d", env.Version, envelopeVersion)
	}
	if env.KDF == nil || env.KDF.Iterations != 5000 {
		t.Fatalf("envelope KDF = %+v, want iterations 5000", env.KDF)
	}

	// A reader with different defaults still decrypts, because the envelope
	// carries its own parameters.
	reader := newInitializedClient(t, backend, "master")
	value, err := reader.Durable().GetItem(ctx, "k")
	if err != nil {
		t.Fatalf("GetItem() error = %v", err)
	}
	if value != "v" {
		t.Errorf("GetItem() = %q, want \"v\"", value)
	}
}

func TestEnvelope_LegacyWithoutKDFUsesDefaults(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()
	client := newInitializedClient(t, backend, "master")

	// Simulate an envelope written by an older client: no version, no KDF,
	// encrypted with the fixed defaults.
	result, err := Encrypt("legacy value", "master")
	if err != nil {
		t.Fatal(err)
	}
	legacy, err := json.Marshal(map[string]string{
		"encryptedData": result.Ciphertext,
		"iv":            result.Nonce,
		"salt":          result.Salt,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := backend.Set(ctx, DefaultPrefix+"legacy", string(legacy)); err != nil {
		t.Fatal(err)
	}

	value, err := client.Durable().GetItem(ctx, "legacy")
	if err != nil {
		t.Fatalf("GetItem() error = %v", err)
	}
	if value != "legacy value" {
		t.Errorf("GetItem() = %q, want \"legacy value\"", value)
	}
}

func TestParseStorageEnvelope_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{{{"},
		{"array", "[1,2,3]"},
		{"missing iv", `{"encryptedData":"YWJj","salt":"YWJj"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseStorageEnvelope(tt.raw); !errors.Is(err, ErrDecryptionFailed) {
				t.Errorf("expected ErrDecryptionFailed, got %v", err)
			}
		})
	}
}
