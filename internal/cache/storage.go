// package cache implements the offline response cache: a TTL'd,
// versioned key/value store over a pluggable durable storage medium.
//
// The cache is a fallback source of truth, never the primary one.
// Storage failures degrade it to "always miss"; they are logged and never
// surfaced to callers.
package cache

import (
	"fmt"
	"sync"

	"github.com/nextsound/nextsound/internal/shared"
)

// Storage is the synchronous string key/value medium the cache writes
// through. Implementations have finite capacity and report quota pressure
// with [shared.ErrQuotaExceeded].
//
// Storage does not implement locking across calls: concurrent writers to
// the same key are last-write-wins.
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
	Keys() ([]string, error)
	Close() error
}

// MemoryStorage is an in-process Storage, used in tests and as a
// non-durable stand-in when no database path is configured. A MaxBytes
// of 0 means unlimited.
type MemoryStorage struct {
	mu       sync.Mutex
	items    map[string]string
	maxBytes int
}

// NewMemoryStorage creates a MemoryStorage bounded to maxBytes of stored
// value data.
func NewMemoryStorage(maxBytes int) *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string), maxBytes: maxBytes}
}

func (m *MemoryStorage) GetItem(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemoryStorage) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxBytes > 0 {
		used := 0
		for k, v := range m.items {
			if k != key {
				used += len(v)
			}
		}
		if used+len(value) > m.maxBytes {
			return fmt.Errorf("cannot store %d bytes: %w", len(value), shared.ErrQuotaExceeded)
		}
	}

	m.items[key] = value
	return nil
}

func (m *MemoryStorage) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

func (m *MemoryStorage) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *MemoryStorage) Close() error { return nil }
