package handler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Harshaaa-a/finbuddychatbot-sub000/db"
)

// CounterStore is a fixed-window request counter keyed by client. The
// in-memory implementation serves single-instance deployments; the Redis one
// shares counts across instances. Counting is approximate: races that over-
// or under-count a request are acceptable.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int64, resetIn time.Duration, err error)
}

type memoryWindow struct {
	count   int64
	resetAt time.Time
}

type MemoryCounterStore struct {
	mu      sync.Mutex
	windows map[string]memoryWindow
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{windows: make(map[string]memoryWindow)}
}

func (s *MemoryCounterStore) Incr(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	// Drop expired windows so the map stays bounded by active clients.
	for k, w := range s.windows {
		if now.After(w.resetAt) {
			delete(s.windows, k)
		}
	}

	w, ok := s.windows[key]
	if !ok {
		w = memoryWindow{count: 0, resetAt: now.Add(window)}
	}
	w.count++
	s.windows[key] = w

	return w.count, time.Until(w.resetAt), nil
}

type RedisCounterStore struct{}

func NewRedisCounterStore() *RedisCounterStore {
	return &RedisCounterStore{}
}

func (s *RedisCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	return db.IncrWindow(ctx, key, window)
}

type Limiter struct {
	store  CounterStore
	limit  int64
	window time.Duration
}

func NewLimiter(store CounterStore, limit int64, window time.Duration) *Limiter {
	return &Limiter{store: store, limit: limit, window: window}
}

// Allow admits or rejects one request for the given client key. A counter
// store failure admits the request: losing a count beats failing a user.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, time.Duration) {
	count, resetIn, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		slog.Warn("rate limit counter unavailable, admitting request", "error", err)
		return true, 0
	}

	if count > l.limit {
		return false, resetIn
	}
	return true, 0
}
