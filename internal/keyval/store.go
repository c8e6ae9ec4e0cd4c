// Package keyval provides the single durable key-value slot the application
// uses to keep the session across restarts, plus an in-memory variant for
// tests. Values are opaque byte slices; callers own their encoding.
package keyval

import "context"

// Store is a minimal named-slot store.
//
// Contract:
//   - Get returns common.ErrorNotFound when the key is absent.
//   - Set overwrites unconditionally (last writer wins).
//   - Delete is a no-op for absent keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
