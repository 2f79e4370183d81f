package repository

import (
	"context"
	"sync"
)

// MemoryListStore keeps lists for the lifetime of the process only.
type MemoryListStore struct {
	mu    sync.RWMutex
	lists map[string][][]byte
}

func NewMemoryListStore() *MemoryListStore {
	return &MemoryListStore{lists: make(map[string][][]byte)}
}

func (s *MemoryListStore) Append(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v := make([]byte, len(value))
	copy(v, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[key] = append([][]byte{v}, s.lists[key]...)
	return nil
}

func (s *MemoryListStore) Range(ctx context.Context, key string) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	src := s.lists[key]
	out := make([][]byte, len(src))
	copy(out, src)
	return out, nil
}
