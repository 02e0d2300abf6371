package timebucket

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store. Ids are assigned sequentially from 1.
type MemoryStore struct {
	mu     sync.Mutex
	ids    map[Bucket]int64
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ids: make(map[Bucket]int64)}
}

func (s *MemoryStore) FindOrCreate(_ context.Context, b Bucket) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.ids[b]; ok {
		return id, nil
	}
	s.nextID++
	s.ids[b] = s.nextID
	return s.nextID, nil
}

// Len reports how many distinct buckets have been created.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}
