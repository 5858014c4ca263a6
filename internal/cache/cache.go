package cache

import (
	"context"
	"os"
	"sync"
	"time"
)

// Cache is the injected TTL memo used by the analysis layer to avoid
// redundant network calls. Values are opaque JSON payloads; a miss and an
// expired entry look the same to the caller.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// FromEnv selects the cache backend: CACHE_BACKEND=valkey for the shared
// store, anything else gets the in-process memory store.
func FromEnv() Cache {
	if os.Getenv("CACHE_BACKEND") == "valkey" {
		return NewValkey()
	}
	return NewMemory()
}

type memoryEntry struct {
	value   []byte
	expires time.Time
}

// Memory is the default process-local store: a map with lazy expiry.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.now().After(entry.expires) {
		delete(m.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (m *Memory) Put(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{
		value:   value,
		expires: m.now().Add(ttl),
	}
}
