// Package memory provides an in-memory substrate for tests.
package memory

import (
	"context"
	"sync"

	"hockey-union/backend/internal/storage"
)

// Store is a map-backed substrate. FailWith forces operations to fail so
// substrate-failure paths can be exercised in tests.
type Store struct {
	mu   sync.Mutex
	data map[string][]byte
	fail error
}

func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// FailWith makes every subsequent operation return err until reset with nil.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	v, ok := s.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.RemoveMany(ctx, []string{key})
}

func (s *Store) RemoveMany(ctx context.Context, keys []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	for _, key := range keys {
		delete(s.data, key)
	}
	return nil
}
