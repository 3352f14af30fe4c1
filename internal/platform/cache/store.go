package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/assetid/internal/platform/resilience"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is an in-process TTL cache keyed by K. Concurrent misses for the same
// key share one loader call.
type Store[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
	ttl     time.Duration
	flight  resilience.SingleFlight[K, V]
	now     func() time.Time

	hits   atomic.Uint64
	misses atomic.Uint64
}

type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

func NewStore[K comparable, V any](ttl time.Duration) *Store[K, V] {
	return &Store[K, V]{
		entries: make(map[K]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store[K, V]) Get(_ context.Context, key K) (V, bool) {
	now := s.now()
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		s.misses.Add(1)
		var zero V
		return zero, false
	}
	if s.ttl > 0 && !e.expiresAt.After(now) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		s.misses.Add(1)
		var zero V
		return zero, false
	}

	s.hits.Add(1)
	return e.value, true
}

func (s *Store[K, V]) Set(_ context.Context, key K, value V) {
	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry[V]{
		value:     value,
		expiresAt: expiresAt,
	}
	s.mu.Unlock()
}

func (s *Store[K, V]) Delete(_ context.Context, keys ...K) {
	if len(keys) == 0 {
		return
	}

	s.mu.Lock()
	for _, key := range keys {
		delete(s.entries, key)
	}
	s.mu.Unlock()
}

// Purge drops every entry.
func (s *Store[K, V]) Purge(_ context.Context) {
	s.mu.Lock()
	s.entries = make(map[K]entry[V])
	s.mu.Unlock()
}

func (s *Store[K, V]) GetOrLoad(ctx context.Context, key K, loader func(context.Context) (V, error)) (V, error) {
	if loader == nil {
		var zero V
		return zero, fmt.Errorf("loader is required")
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (V, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return loaded, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	return value, nil
}

func (s *Store[K, V]) Stats() Stats {
	s.mu.RLock()
	n := len(s.entries)
	s.mu.RUnlock()

	return Stats{
		Entries: n,
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
	}
}
