package enrich

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hartwell-audio/daymix/internal/core/domain"
	"github.com/hartwell-audio/daymix/internal/core/ports"
)

type stubEnricher struct {
	calls atomic.Int32
	err   error
	delay time.Duration
}

func (s *stubEnricher) Enrich(_ context.Context, externalURL, fallbackName, fallbackArtist string) (domain.Enrichment, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return domain.Enrichment{}, s.err
	}
	return domain.Enrichment{Name: "Name " + externalURL, Artist: fallbackArtist}, nil
}

func TestCacheHit(t *testing.T) {
	stub := &stubEnricher{}
	c := NewCache(stub, nil, time.Minute, 16, zerolog.Nop())

	for i := 0; i < 3; i++ {
		got, err := c.Enrich(context.Background(), "url-1", "fb", "artist")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Name url-1" {
			t.Fatalf("name = %q", got.Name)
		}
	}

	if n := stub.calls.Load(); n != 1 {
		t.Fatalf("provider called %d times, want 1", n)
	}
}

func TestCacheNegativeResult(t *testing.T) {
	stub := &stubEnricher{err: errors.New("boom")}
	c := NewCache(stub, nil, time.Minute, 16, zerolog.Nop())

	for i := 0; i < 3; i++ {
		_, err := c.Enrich(context.Background(), "url-bad", "fb", "artist")
		if !errors.Is(err, ports.ErrEnrichmentUnavailable) {
			t.Fatalf("want ErrEnrichmentUnavailable, got %v", err)
		}
	}

	// The failure itself is cached: one provider call, not three.
	if n := stub.calls.Load(); n != 1 {
		t.Fatalf("provider called %d times, want 1", n)
	}
}

func TestCacheDedupesConcurrentLookups(t *testing.T) {
	stub := &stubEnricher{delay: 20 * time.Millisecond}
	c := NewCache(stub, nil, time.Minute, 16, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Enrich(context.Background(), "url-shared", "fb", "artist")
		}()
	}
	wg.Wait()

	if n := stub.calls.Load(); n != 1 {
		t.Fatalf("provider called %d times for one url, want 1", n)
	}
}

type mapStore struct {
	mu   sync.Mutex
	data map[string]domain.Enrichment
}

func newMapStore() *mapStore {
	return &mapStore{data: map[string]domain.Enrichment{}}
}

func (m *mapStore) Get(_ context.Context, url string) (domain.Enrichment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.data[url]; ok {
		return e, nil
	}
	return domain.Enrichment{}, domain.ErrNotFound
}

func (m *mapStore) Put(_ context.Context, url string, e domain.Enrichment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[url] = e
	return nil
}

func TestCacheConsultsStore(t *testing.T) {
	stub := &stubEnricher{}
	store := newMapStore()
	store.data["url-stored"] = domain.Enrichment{Name: "From Store"}

	c := NewCache(stub, store, time.Minute, 16, zerolog.Nop())

	got, err := c.Enrich(context.Background(), "url-stored", "fb", "artist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "From Store" {
		t.Fatalf("name = %q, want store value", got.Name)
	}
	if stub.calls.Load() != 0 {
		t.Fatal("provider should not be called on a store hit")
	}
}

func TestCacheWritesThroughToStore(t *testing.T) {
	stub := &stubEnricher{}
	store := newMapStore()
	c := NewCache(stub, store, time.Minute, 16, zerolog.Nop())

	if _, err := c.Enrich(context.Background(), "url-new", "fb", "artist"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.data["url-new"]; !ok {
		t.Fatal("fetched enrichment was not persisted")
	}
}
