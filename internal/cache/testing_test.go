package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type record struct {
	ID        int64  `json:"id" msgpack:"id"`
	Title     string `json:"title" msgpack:"title"`
	Status    string `json:"status" msgpack:"status"`
	CreatedAt string `json:"created_at" msgpack:"created_at"`
}

var recordCodec = DelimitedCodec[record]{
	NumFields: 4,
	Fields: func(r record) []string {
		return []string{strconv.FormatInt(r.ID, 10), r.Title, r.Status, r.CreatedAt}
	},
	Parse: func(f []string) (record, error) {
		id, err := strconv.ParseInt(f[0], 10, 64)
		if err != nil {
			return record{}, err
		}
		return record{ID: id, Title: f[1], Status: f[2], CreatedAt: f[3]}, nil
	},
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisStoreFromClient(client)
}

// failingStore fails every operation that has an error configured.
type failingStore struct {
	getErr, setErr, delErr error
	sets                   int
}

func (s *failingStore) Get(context.Context, string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return "", ErrMiss
}

func (s *failingStore) Set(context.Context, string, string, time.Duration) error {
	s.sets++
	return s.setErr
}

func (s *failingStore) Delete(context.Context, string) error {
	return s.delErr
}

var errUnavailable = errors.New("connection refused")
