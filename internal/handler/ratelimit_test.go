package handler

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := NewLimiter(NewMemoryCounterStore(), 10, time.Minute)

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow(context.Background(), "client-a")
		assert.Equal(t, true, allowed)
	}

	allowed, resetIn := limiter.Allow(context.Background(), "client-a")
	assert.Equal(t, false, allowed)
	assert.Equal(t, true, resetIn > 0)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewLimiter(NewMemoryCounterStore(), 1, time.Minute)

	allowed, _ := limiter.Allow(context.Background(), "client-a")
	assert.Equal(t, true, allowed)

	allowed, _ = limiter.Allow(context.Background(), "client-a")
	assert.Equal(t, false, allowed)

	allowed, _ = limiter.Allow(context.Background(), "client-b")
	assert.Equal(t, true, allowed)
}

func TestMemoryCounterStore_WindowResets(t *testing.T) {
	store := NewMemoryCounterStore()

	count, _, err := store.Incr(context.Background(), "k", 10*time.Millisecond)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), count)

	count, _, _ = store.Incr(context.Background(), "k", 10*time.Millisecond)
	assert.Equal(t, int64(2), count)

	time.Sleep(15 * time.Millisecond)

	count, _, _ = store.Incr(context.Background(), "k", 10*time.Millisecond)
	assert.Equal(t, int64(1), count)
}

func TestMemoryCounterStore_PrunesExpiredWindows(t *testing.T) {
	store := NewMemoryCounterStore()

	for _, key := range []string{"a", "b", "c"} {
		store.Incr(context.Background(), key, 10*time.Millisecond)
	}
	assert.Equal(t, 3, len(store.windows))

	time.Sleep(15 * time.Millisecond)

	store.Incr(context.Background(), "d", time.Minute)
	assert.Equal(t, 1, len(store.windows))
}
