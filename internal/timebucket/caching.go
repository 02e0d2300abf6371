package timebucket

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachingStore memoizes bucket ids in front of another Store.
// Bucket rows are never updated or deleted, so a memoized id stays valid for
// the lifetime of the process.
type CachingStore struct {
	next Store
	memo *lru.Cache[Bucket, int64]
}

// NewCachingStore wraps next with an LRU memo holding up to size buckets.
func NewCachingStore(next Store, size int) (*CachingStore, error) {
	memo, err := lru.New[Bucket, int64](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create bucket memo: %w", err)
	}
	return &CachingStore{next: next, memo: memo}, nil
}

func (s *CachingStore) FindOrCreate(ctx context.Context, b Bucket) (int64, error) {
	if id, ok := s.memo.Get(b); ok {
		return id, nil
	}
	id, err := s.next.FindOrCreate(ctx, b)
	if err != nil {
		return 0, err
	}
	s.memo.Add(b, id)
	return id, nil
}
