package spotify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hartwell-audio/daymix/internal/core/ports"
)

func TestClientEnrich(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oembed" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("url") == "" {
			t.Error("missing url query parameter")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Dreams - 2004 Remaster","thumbnail_url":"https://i.scdn.co/image/abc","provider_name":"Spotify"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL)
	got, err := c.Enrich(context.Background(), "https://open.spotify.com/track/0ofHAoxe9vBkTCp2UQIavz", "Dreams", "Fleetwood Mac")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Name != "Dreams" {
		t.Errorf("name = %q, want cleaned %q", got.Name, "Dreams")
	}
	if got.RawTitle != "Dreams - 2004 Remaster" {
		t.Errorf("raw title = %q", got.RawTitle)
	}
	if got.Artist != "Fleetwood Mac" {
		t.Errorf("artist = %q, want fallback", got.Artist)
	}
	if got.ArtworkURL != "https://i.scdn.co/image/abc" {
		t.Errorf("artwork = %q", got.ArtworkURL)
	}
}

func TestClientEnrichNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL)
	_, err := c.Enrich(context.Background(), "https://open.spotify.com/track/missing", "x", "y")
	if !errors.Is(err, ports.ErrEnrichmentUnavailable) {
		t.Fatalf("want ErrEnrichmentUnavailable, got %v", err)
	}
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Holocene","thumbnail_url":""}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL)
	c.baseBackoff = time.Millisecond

	got, err := c.Enrich(context.Background(), "https://open.spotify.com/track/x", "fallback", "Bon Iver")
	if err != nil {
		t.Fatalf("unexpected error after retries: %v", err)
	}
	if got.Name != "Holocene" {
		t.Fatalf("name = %q", got.Name)
	}
	if calls.Load() != 3 {
		t.Fatalf("server saw %d calls, want 3", calls.Load())
	}
}

func TestClientContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := c.Enrich(ctx, "https://open.spotify.com/track/x", "a", "b"); err == nil {
		t.Fatal("expected error on canceled context")
	}
}
