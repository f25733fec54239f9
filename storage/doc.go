// Package storage defines the key-value storage medium consumed by the
// secure store, along with three implementations:
//
//   - [Memory]: an in-process map, the medium behind session-scoped stores.
//   - [File]: a single JSON file with 0600 permissions and atomic writes,
//     the default durable medium.
//   - [Redis]: a Redis-backed medium for deployments that share encrypted
//     state across processes.
//
// Implementations only ever see opaque serialized envelopes; no plaintext
// or key material reaches this layer. Per-key reads and writes are atomic;
// concurrent writes to the same key follow last-write-wins semantics.
package storage
