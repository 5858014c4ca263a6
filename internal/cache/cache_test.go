package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetMiss(t *testing.T) {
	m := NewMemory()

	_, ok := m.Get(context.Background(), "absent")
	assert.False(t, ok)
}

func TestMemoryPutGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Put(ctx, "key", []byte(`{"hello":"world"}`), time.Minute)

	value, ok := m.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"hello":"world"}`), value)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m.Put(ctx, "key", []byte("value"), 300*time.Second)

	now = now.Add(299 * time.Second)
	_, ok := m.Get(ctx, "key")
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = m.Get(ctx, "key")
	assert.False(t, ok)

	// Expired entries are gone for good, even if the clock rolls back.
	now = now.Add(-10 * time.Second)
	_, ok = m.Get(ctx, "key")
	assert.False(t, ok)
}

func TestMemoryOverwriteRefreshesTTL(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m.Put(ctx, "key", []byte("old"), time.Minute)
	now = now.Add(50 * time.Second)
	m.Put(ctx, "key", []byte("new"), time.Minute)
	now = now.Add(50 * time.Second)

	value, ok := m.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), value)
}
