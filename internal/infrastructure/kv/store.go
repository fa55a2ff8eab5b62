package kv

import "context"

// Entry is a key/value pair returned by prefix scans.
type Entry struct {
	Key   string
	Value []byte
}

// Store is the sole persistence primitive: a key to whole-JSON-value map
// with prefix scans. Operations are atomic per key only; there are no
// multi-key transactions, so read-modify-write sequences over shared keys
// must be serialized by the caller.
//
// Get returns (nil, nil) when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([]Entry, error)
}
