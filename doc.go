// Package securestore provides client-side encryption for key-value data:
// primitive Encrypt/Decrypt operations built on PBKDF2 and AES-256-GCM, and
// a store wrapper that transparently encrypts values on the way into a
// storage medium and decrypts them on the way out.
//
// Basic usage:
//
//	durable, err := storage.NewFile("securestore.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := securestore.New(durable)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.Initialize("master password"); err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Teardown()
//
//	store := client.Durable()
//	if err := store.SetItem(ctx, "api-token", "tok_123"); err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := store.GetItem(ctx, "api-token")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Treat every DecryptionError as "wrong password or corrupted data"; the SDK
// deliberately does not say which.
package securestore
