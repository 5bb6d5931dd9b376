// Package storage defines the key-value substrate the document store is
// built on, plus the sentinel errors shared by its implementations.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound indicates the requested key is absent from the substrate.
var ErrKeyNotFound = errors.New("key not found")

// ErrRecordNotFound indicates a record id matched nothing in its collection.
var ErrRecordNotFound = errors.New("record not found")

// ErrSubstrateFailure wraps substrate read/write or serialization failures.
var ErrSubstrateFailure = errors.New("substrate failure")

// Key returns the namespaced substrate key for a collection or singleton
// name.
func Key(name string) string {
	return KeyPrefix + name
}

// KV is the durable key-value substrate: opaque key to opaque value.
// Get returns ErrKeyNotFound for absent keys; implementations wrap their
// own I/O failures so callers can test with errors.Is.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	RemoveMany(ctx context.Context, keys []string) error
}
