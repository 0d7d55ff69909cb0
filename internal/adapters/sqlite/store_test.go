package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/hartwell-audio/daymix/internal/core/domain"
)

func testStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "daymix_test.db"), ttl)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := testStore(t, time.Hour)
	ctx := context.Background()

	want := domain.Enrichment{
		Name:       "Dreams",
		Artist:     "Fleetwood Mac",
		ArtworkURL: "https://i.scdn.co/image/abc",
		RawTitle:   "Dreams - 2004 Remaster",
	}
	if err := s.Put(ctx, "url-1", want); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := s.Get(ctx, "url-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestStoreMiss(t *testing.T) {
	s := testStore(t, time.Hour)

	_, err := s.Get(context.Background(), "url-missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestStoreUpsert(t *testing.T) {
	s := testStore(t, time.Hour)
	ctx := context.Background()

	if err := s.Put(ctx, "url-1", domain.Enrichment{Name: "First", Artist: "a"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := s.Put(ctx, "url-1", domain.Enrichment{Name: "Second", Artist: "a"}); err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	got, err := s.Get(ctx, "url-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Second" {
		t.Fatalf("name = %q, want updated value", got.Name)
	}
}

func TestStoreExpiry(t *testing.T) {
	s := testStore(t, time.Nanosecond)
	ctx := context.Background()

	if err := s.Put(ctx, "url-old", domain.Enrichment{Name: "Stale", Artist: "a"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	time.Sleep(time.Millisecond)

	_, err := s.Get(ctx, "url-old")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("stale row should read as a miss, got %v", err)
	}
}
