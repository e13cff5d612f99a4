package memory

import (
	"sort"
	"sync"

	"github.com/hupe1980/agentrelay/core"
)

// InMemoryStore is a process-local core.MemoryStore. It has no eviction,
// expiry or size bound and is never persisted.
//
// Concurrency: protected by RWMutex.
type InMemoryStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewInMemoryStore creates a new, empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{values: make(map[string]any)}
}

// Get returns the value stored under key. An absent key yields (nil, false).
func (m *InMemoryStore) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (m *InMemoryStore) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Len returns the number of stored keys.
func (m *InMemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

// Keys returns the stored keys in sorted order.
func (m *InMemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ core.MemoryStore = (*InMemoryStore)(nil)
