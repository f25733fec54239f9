package securestore

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/securestore/securestore-go/storage"
)

func newInitializedClient(t *testing.T, backend storage.Storage, password string) *Client {
	t.Helper()
	client, err := New(backend)
	if err != nil {
		t.Fatal(err)
	}
	if err := client.Initialize(password); err != nil {
		t.Fatal(err)
	}
	return client
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newInitializedClient(t, storage.NewMemory(), "master")
	store := client.Durable()

	if err := store.SetItem(ctx, "token", `{"access":"abc123"}`); err != nil {
		t.Fatalf("SetItem() error = %v", err)
	}

	value, err := store.GetItem(ctx, "token")
	if err != nil {
		t.Fatalf("GetItem() error = %v", err)
	}
	if value != `{"access":"abc123"}` {
		t.Errorf("GetItem() = %q", value)
	}
}

func TestStore_GetItem_Absent(t *testing.T) {
	ctx := context.Background()
	client := newInitializedClient(t, storage.NewMemory(), "master")

	_, err := client.Durable().GetItem(ctx, "missing")
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestStore_EmptyKey(t *testing.T) {
	ctx := context.Background()
	client := newInitializedClient(t, storage.NewMemory(), "master")
	store := client.Durable()

	if err := store.SetItem(ctx, "", "v"); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("SetItem: expected ErrEmptyKey, got %v", err)
	}
	if _, err := store.GetItem(ctx, ""); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("GetItem: expected ErrEmptyKey, got %v", err)
	}
	if err := store.RemoveItem(ctx, ""); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("RemoveItem: expected ErrEmptyKey, got %v", err)
	}
}

func TestStore_ValueIsEncryptedAtRest(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()
	client := newInitializedClient(t, backend, "master")

	secret := "plaintext secret value"
	if err := client.Durable().SetItem(ctx, "k", secret); err != nil {
		t.Fatal(err)
	}

	record, ok, err := backend.Get(ctx, DefaultPrefix+"k")
	if err != nil || !ok {
		t.Fatalf("raw record missing: ok=%v, err=%v", ok, err)
	}

	if strings.Contains(record, secret) {
		t.Error("stored record contains the plaintext")
	}

	var env struct {
		EncryptedData string `json:"encryptedData"`
		IV            string `json:"iv"`
		Salt          string `json:"salt"`
	}
	if err := json.Unmarshal([]byte(record), &env); err != nil {
		t.Fatalf("stored record is not an envelope: %v", err)
	}
	if env.EncryptedData == "" || env.IV == "" || env.Salt == "" {
		t.Errorf("envelope has empty fields: %+v", env)
	}
}

func TestStore_WrongPasswordOnRead(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()

	writer := newInitializedClient(t, backend, "right password")
	if err := writer.Durable().SetItem(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}

	reader := newInitializedClient(t, backend, "wrong password")
	if _, err := reader.Durable().GetItem(ctx, "k"); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestStore_CorruptedRecord(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()
	client := newInitializedClient(t, backend, "master")

	tests := []struct {
		name   string
		record string
	}{
		{"not json", "garbage"},
		{"missing fields", `{"encryptedData":"YWJj"}`},
		{"empty fields", `{"encryptedData":"","iv":"","salt":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := backend.Set(ctx, DefaultPrefix+"bad", tt.record); err != nil {
				t.Fatal(err)
			}
			if _, err := client.Durable().GetItem(ctx, "bad"); !errors.Is(err, ErrDecryptionFailed) {
				t.Errorf("expected ErrDecryptionFailed, got %v", err)
			}
		})
	}
}

func TestStore_RemoveItem(t *testing.T) {
	ctx := context.Background()
	client := newInitializedClient(t, storage.NewMemory(), "master")
	store := client.Durable()

	if err := store.SetItem(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := store.RemoveItem(ctx, "k"); err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if _, err := store.GetItem(ctx, "k"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound after remove, got %v", err)
	}

	// Removing an absent entry is not an error
	if err := store.RemoveItem(ctx, "k"); err != nil {
		t.Errorf("RemoveItem(absent) error = %v", err)
	}
}

func TestStore_Clear_LeavesUnrelatedEntries(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()
	client := newInitializedClient(t, backend, "master")
	store := client.Durable()

	// A pre-existing entry outside the namespace
	if err := backend.Set(ctx, "unrelated", "plain data"); err != nil {
		t.Fatal(err)
	}

	for _, k := range []string{"a", "b", "c"} {
		if err := store.SetItem(ctx, k, "v"); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	for _, k := range []string{"a", "b", "c"} {
		if _, err := store.GetItem(ctx, k); !errors.Is(err, ErrItemNotFound) {
			t.Errorf("key %q survived Clear: %v", k, err)
		}
	}

	value, ok, err := backend.Get(ctx, "unrelated")
	if err != nil || !ok || value != "plain data" {
		t.Errorf("unrelated entry disturbed: %q, ok=%v, err=%v", value, ok, err)
	}
}

func TestStore_JSONHelpers(t *testing.T) {
	ctx := context.Background()
	client := newInitializedClient(t, storage.NewMemory(), "master")
	store := client.Session()

	type credentials struct {
		User  string `json:"user"`
		Token string `json:"token"`
	}

	want := credentials{User: "alice", Token: "tok_123"}
	if err := store.SetJSON(ctx, "creds", want); err != nil {
		t.Fatalf("SetJSON() error = %v", err)
	}

	var got credentials
	if err := store.GetJSON(ctx, "creds", &got); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if got != want {
		t.Errorf("GetJSON() = %+v, want %+v", got, want)
	}
}

func TestStore_SetJSON_UnmarshalableValue(t *testing.T) {
	ctx := context.Background()
	client := newInitializedClient(t, storage.NewMemory(), "master")

	if err := client.Session().SetJSON(ctx, "bad", func() {}); err == nil {
		t.Error("expected marshal error for func value")
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	client := newInitializedClient(t, storage.NewMemory(), "master")
	store := client.Durable()

	if err := store.SetItem(ctx, "k", "first"); err != nil {
		t.Fatal(err)
	}
	if err := store.SetItem(ctx, "k", "second"); err != nil {
		t.Fatal(err)
	}

	value, err := store.GetItem(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if value != "second" {
		t.Errorf("GetItem() = %q, want \"second\"", value)
	}
}
