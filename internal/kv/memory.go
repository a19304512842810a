package kv

import (
	"slices"
	"sync"
)

// MemoryStore keeps values in process memory. It backs the "memory" store
// backend and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (store *MemoryStore) Get(key string) ([]byte, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	value, ok := store.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (store *MemoryStore) Set(key string, value []byte) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.values[key] = append([]byte(nil), value...)
	return nil
}

func (store *MemoryStore) Delete(key string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.values, key)
	return nil
}

func (store *MemoryStore) Len() int {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return len(store.values)
}

func (store *MemoryStore) Keys() ([]string, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	keys := make([]string, 0, len(store.values))
	for key := range store.values {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys, nil
}
