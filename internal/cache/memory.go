package cache

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity bounds a Memory store created with capacity < 1.
const DefaultCapacity = 256

// Memory is an in-process LRU store. Values are copied on the way in
// and out, so callers may reuse their buffers.
type Memory struct {
	mu     sync.RWMutex // guards closed; items is safe on its own
	items  *lru.Cache[string, []byte]
	closed bool
}

// NewMemory returns an empty LRU holding at most capacity entries.
func NewMemory(capacity int) *Memory {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	// lru.New only fails on a non-positive size.
	items, _ := lru.New[string, []byte](capacity)

	return &Memory{items: items}
}

// Get returns a copy of the value stored under key and marks it used.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, false, ErrClosed
	}
	v, ok := m.items.Get(key)
	if !ok {
		return nil, false, nil
	}

	return clone(v), true, nil
}

// Set stores a copy of value, evicting the least recently used entry when
// the store is full.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrClosed
	}
	m.items.Add(key, clone(value))

	return nil
}

// Len reports the number of cached entries.
func (m *Memory) Len() int { return m.items.Len() }

// Close drops every entry; later calls fail with ErrClosed.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.items.Purge()

	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)

	return out
}
