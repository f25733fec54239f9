package securestore

import (
	"crypto/subtle"
	"sync"

	"github.com/securestore/securestore-go/storage"
)

// DefaultPrefix is the namespace prefix prepended to every stored key,
// keeping encrypted entries distinguishable from unrelated data in the same
// storage medium.
const DefaultPrefix = "securestore_"

// Client owns one secure storage session and the two stores bound to it:
// a durable store backed by the medium passed to New, and a session store
// backed by process memory. Both stores share the session's master password;
// one Initialize call unlocks them both.
type Client struct {
	mu          sync.RWMutex
	password    []byte
	initialized bool

	prefix string
	params DerivationParams

	durable *Store
	session *Store
}

// New creates a client over the given durable storage medium. The session
// store always uses in-process memory and vanishes with the process.
func New(durable storage.Storage, opts ...Option) (*Client, error) {
	if durable == nil {
		return nil, &StorageError{Op: "new", Err: errNilStorage}
	}

	cfg := &clientConfig{
		prefix:         DefaultPrefix,
		params:         DefaultDerivationParams(),
		sessionStorage: storage.NewMemory(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Client{
		prefix: cfg.prefix,
		params: cfg.params,
	}
	c.durable = &Store{client: c, backend: durable}
	c.session = &Store{client: c, backend: cfg.sessionStorage}

	return c, nil
}

// Initialize transitions the session to the initialized state, capturing the
// master password for all subsequent store operations. Calling it again with
// the same password is a no-op; calling it with a different password returns
// ErrAlreadyInitialized. Re-keying requires an explicit Teardown first.
func (c *Client) Initialize(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		if subtle.ConstantTimeCompare(c.password, []byte(password)) == 1 {
			return nil
		}
		return ErrAlreadyInitialized
	}

	c.password = []byte(password)
	c.initialized = true
	return nil
}

// IsInitialized reports whether the session holds a master password.
// It never fails and has no side effects.
func (c *Client) IsInitialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialized
}

// Teardown clears the session, zeroizing the captured password. Store
// contents are untouched; a subsequent Initialize with the original password
// makes them readable again.
func (c *Client) Teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.password {
		c.password[i] = 0
	}
	c.password = nil
	c.initialized = false
}

// Durable returns the store backed by the durable medium passed to New.
func (c *Client) Durable() *Store {
	return c.durable
}

// Session returns the in-memory, process-lifetime store.
func (c *Client) Session() *Store {
	return c.session
}

// currentPassword returns a copy of the session password, or an
// InitializationError naming op if the session is not initialized.
func (c *Client) currentPassword(op string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.initialized {
		return "", &InitializationError{Op: op}
	}
	return string(c.password), nil
}
