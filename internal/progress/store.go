// Package progress defines the durable player state of Seeker Ball: the
// key/value store contract it is persisted through, the persisted keys, and a
// typed loader that turns loosely-typed stored strings into a validated Profile.
package progress

import (
	"sort"
	"sync"
)

// Store is a string-keyed persistence backend.
// Get reports whether the key exists. Set writes synchronously.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// MemoryStore is an in-process Store. It is used in tests and as the fallback
// when no database is available.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get returns the stored value for key.
func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

// Set stores value under key.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Keys returns all stored keys in sorted order.
func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ Store = (*MemoryStore)(nil)
