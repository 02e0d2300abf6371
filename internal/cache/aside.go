package cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/drivesafe-lab/drivesafe/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// Source tells where a GetOrPopulate result came from.
type Source string

const (
	SourceCache Source = "cache"
	SourceStore Source = "store"
)

// DefaultTTL applies when GetOrPopulate is called with a non-positive ttl.
const DefaultTTL = 30 * time.Second

// DefaultLoadTimeout bounds a shared loader call. The loader does not inherit
// the cancellation of the caller that started it.
const DefaultLoadTimeout = 10 * time.Second

// Loader fetches the authoritative records for a key.
type Loader[T any] func(ctx context.Context) ([]T, error)

// Aside is a cache-aside reader for lists of T. Safe for concurrent use.
type Aside[T any] struct {
	store       Store
	codec       Codec[T]
	keyPrefix   string
	defaultTTL  time.Duration
	loadTimeout time.Duration
	group       singleflight.Group

	// generations is bumped per key by Invalidate. A load that started under
	// an older generation never joins newer reads and never writes back.
	mu          sync.Mutex
	generations map[string]uint64
}

type Option func(*options)

type options struct {
	keyPrefix   string
	defaultTTL  time.Duration
	loadTimeout time.Duration
}

// WithKeyPrefix namespaces every key, e.g. "drivesafe:".
func WithKeyPrefix(prefix string) Option {
	return func(o *options) { o.keyPrefix = prefix }
}

// WithDefaultTTL overrides DefaultTTL.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.defaultTTL = ttl
		}
	}
}

// WithLoadTimeout overrides DefaultLoadTimeout.
func WithLoadTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.loadTimeout = d
		}
	}
}

func NewAside[T any](store Store, codec Codec[T], opts ...Option) *Aside[T] {
	if store == nil {
		panic("cache: store must not be nil")
	}
	if codec == nil {
		panic("cache: codec must not be nil")
	}
	o := options{defaultTTL: DefaultTTL, loadTimeout: DefaultLoadTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	return &Aside[T]{
		store:       store,
		codec:       codec,
		keyPrefix:   o.keyPrefix,
		defaultTTL:  o.defaultTTL,
		loadTimeout: o.loadTimeout,
		generations: make(map[string]uint64),
	}
}

// GetOrPopulate returns the records cached under key, or loads them, caches
// them for ttl and returns them tagged SourceStore.
//
// Cache read, decode, encode and write failures are logged, counted and
// otherwise ignored. Loader errors are returned. Concurrent misses for the
// same key share one loader call; a caller whose ctx ends while waiting gets
// ctx.Err() and the shared load carries on for the others.
func (a *Aside[T]) GetOrPopulate(ctx context.Context, key string, ttl time.Duration, load Loader[T]) (Source, []T, error) {
	fullKey := a.keyPrefix + key

	if records, ok := a.read(ctx, fullKey); ok {
		metrics.RecordCacheLookup(true)
		return SourceCache, records, nil
	}
	metrics.RecordCacheLookup(false)

	if ttl <= 0 {
		ttl = a.defaultTTL
	}

	gen := a.generation(fullKey)
	flight := fullKey + "@" + strconv.FormatUint(gen, 10)

	ch := a.group.DoChan(flight, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.loadTimeout)
		defer cancel()

		records, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		a.writeIfCurrent(loadCtx, fullKey, gen, records, ttl)
		return records, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return SourceStore, nil, res.Err
		}
		return SourceStore, res.Val.([]T), nil
	case <-ctx.Done():
		return SourceStore, nil, ctx.Err()
	}
}

// Invalidate drops the entry for key so the next read goes to the loader.
// Loads already in flight for key are detached: later reads do not join
// them and their results are not written back. Store failures are logged
// and counted only.
func (a *Aside[T]) Invalidate(ctx context.Context, key string) {
	fullKey := a.keyPrefix + key

	a.mu.Lock()
	a.generations[fullKey]++
	a.mu.Unlock()

	if err := a.store.Delete(ctx, fullKey); err != nil {
		metrics.RecordCacheError("delete")
		slog.Warn("[Cache] Invalidate failed", "key", fullKey, "error", err)
	}
}

func (a *Aside[T]) generation(key string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generations[key]
}

// writeIfCurrent caches records loaded under gen. If key was invalidated
// while the load ran the write is skipped, and if the invalidation raced the
// write itself the entry is removed again.
func (a *Aside[T]) writeIfCurrent(ctx context.Context, key string, gen uint64, records []T, ttl time.Duration) {
	if a.generation(key) != gen {
		return
	}
	a.write(ctx, key, records, ttl)
	if a.generation(key) != gen {
		if err := a.store.Delete(ctx, key); err != nil {
			metrics.RecordCacheError("delete")
			slog.Warn("[Cache] Failed to drop stale entry", "key", key, "error", err)
		}
	}
}

func (a *Aside[T]) read(ctx context.Context, key string) ([]T, bool) {
	raw, err := a.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			metrics.RecordCacheError("get")
			slog.Warn("[Cache] Read failed, falling back to store", "key", key, "error", err)
		}
		return nil, false
	}

	records, err := a.codec.Decode(raw)
	if err != nil {
		metrics.RecordCacheError("decode")
		slog.Warn("[Cache] Discarding malformed entry", "key", key, "error", err)
		return nil, false
	}
	return records, true
}

func (a *Aside[T]) write(ctx context.Context, key string, records []T, ttl time.Duration) {
	raw, err := a.codec.Encode(records)
	if err != nil {
		metrics.RecordCacheError("encode")
		slog.Warn("[Cache] Encode failed, not caching", "key", key, "error", err)
		return
	}
	if err := a.store.Set(ctx, key, raw, ttl); err != nil {
		metrics.RecordCacheError("set")
		slog.Warn("[Cache] Write failed", "key", key, "error", err)
	}
}
