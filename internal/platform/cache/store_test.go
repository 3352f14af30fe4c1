package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/assetid/internal/platform/id"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[id.U64ID, string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), id.FromRaw(0xa12b345), loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore[id.U64ID, string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		return "cached", nil
	}

	key := id.FromRaw(1)
	if _, err := store.GetOrLoad(context.Background(), key, loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), key, loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
	if stats := store.Stats(); stats.Entries != 1 || stats.Hits == 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestStore_LoaderErrorIsNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore[string, int](time.Minute)
	errBoom := errors.New("boom")

	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) {
		return 0, errBoom
	}); !errors.Is(err, errBoom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if stats := store.Stats(); stats.Entries != 0 {
		t.Fatalf("expected no cached entry after error, got %+v", stats)
	}
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	store := NewStore[id.U64ID, string](time.Second)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), id.FromRaw(2), "v")
	if _, ok := store.Get(context.Background(), id.FromRaw(2)); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Second)
	if _, ok := store.Get(context.Background(), id.FromRaw(2)); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_DeleteAndPurge(t *testing.T) {
	t.Parallel()

	store := NewStore[id.U64ID, string](time.Minute)
	ctx := context.Background()
	store.Set(ctx, id.FromRaw(1), "a")
	store.Set(ctx, id.FromRaw(2), "b")
	store.Set(ctx, id.FromRaw(3), "c")

	store.Delete(ctx, id.FromRaw(1), id.FromRaw(2))
	if _, ok := store.Get(ctx, id.FromRaw(1)); ok {
		t.Fatalf("expected key 1 deleted")
	}
	if _, ok := store.Get(ctx, id.FromRaw(3)); !ok {
		t.Fatalf("expected key 3 kept")
	}

	store.Purge(ctx)
	if stats := store.Stats(); stats.Entries != 0 {
		t.Fatalf("expected empty store after purge, got %+v", stats)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
