// Command securestore is a small CLI over the SDK, used for smoke-testing
// deployments and for cross-client checks of the envelope format. The master
// password is taken from SECURESTORE_PASSWORD; the storage medium from the
// usual SECURESTORE_* environment variables.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	securestore "github.com/securestore/securestore-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: securestore <command> [args]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "keygen":
		keygen()
	case "set":
		if len(os.Args) < 4 {
			fatal("usage: securestore set <key> <value>")
		}
		store(ctx).setItem(ctx, os.Args[2], os.Args[3])
	case "get":
		if len(os.Args) < 3 {
			fatal("usage: securestore get <key>")
		}
		store(ctx).getItem(ctx, os.Args[2])
	case "remove":
		if len(os.Args) < 3 {
			fatal("usage: securestore remove <key>")
		}
		store(ctx).removeItem(ctx, os.Args[2])
	case "clear":
		store(ctx).clear(ctx)
	case "export":
		store(ctx).export(ctx)
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

// cli wraps the durable store of an initialized client.
type cli struct {
	store *securestore.Store
}

func store(ctx context.Context) *cli {
	password := os.Getenv("SECURESTORE_PASSWORD")
	if password == "" {
		fatal("SECURESTORE_PASSWORD environment variable is required")
	}

	client, err := securestore.NewFromEnv(ctx)
	if err != nil {
		fatal("create client: %v", err)
	}

	if err := client.Initialize(password); err != nil {
		fatal("initialize: %v", err)
	}

	return &cli{store: client.Durable()}
}

func keygen() {
	keypair, err := securestore.GenerateRecipientKeypair()
	if err != nil {
		fatal("generate keypair: %v", err)
	}

	if err := json.NewEncoder(os.Stdout).Encode(keypair); err != nil {
		fatal("encode keypair: %v", err)
	}
}

func (c *cli) setItem(ctx context.Context, key, value string) {
	if err := c.store.SetItem(ctx, key, value); err != nil {
		fatal("set %q: %v", key, err)
	}
}

func (c *cli) getItem(ctx context.Context, key string) {
	value, err := c.store.GetItem(ctx, key)
	if err != nil {
		fatal("get %q: %v", key, err)
	}
	fmt.Println(value)
}

func (c *cli) removeItem(ctx context.Context, key string) {
	if err := c.store.RemoveItem(ctx, key); err != nil {
		fatal("remove %q: %v", key, err)
	}
}

func (c *cli) clear(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		fatal("clear: %v", err)
	}
}

func (c *cli) export(ctx context.Context) {
	data, err := c.store.Export(ctx)
	if err != nil {
		fatal("export: %v", err)
	}

	if err := json.NewEncoder(os.Stdout).Encode(data); err != nil {
		fatal("encode export: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
