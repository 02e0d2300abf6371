// Package cache implements the cache-aside read path: reads try a key-value
// store first and fall back to an authoritative loader, repopulating the store
// on the way out. The key-value store is advisory; its failures never fail a read.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Store.Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Store is a string key-value store with per-key expiry.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NopStore never holds anything. Used when caching is disabled.
type NopStore struct{}

func (NopStore) Get(context.Context, string) (string, error)              { return "", ErrMiss }
func (NopStore) Set(context.Context, string, string, time.Duration) error { return nil }
func (NopStore) Delete(context.Context, string) error                     { return nil }
