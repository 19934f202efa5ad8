// Package kv persists small JSON documents by string key.
package kv

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("key not found")

// Store is the get/set/remove surface every backend implements. Get returns
// ErrNotFound for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
