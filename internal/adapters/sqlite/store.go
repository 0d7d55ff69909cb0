// Package sqlite provides a SQLite-backed implementation of the
// enrichment store port, so display metadata survives restarts without
// re-fetching the whole catalog.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // driver registration

	"github.com/hartwell-audio/daymix/internal/core/domain"
	"github.com/hartwell-audio/daymix/internal/core/ports"
)

// Store implements ports.EnrichmentStore over a local SQLite file.
type Store struct {
	db  *sql.DB
	ttl time.Duration
}

var _ ports.EnrichmentStore = (*Store)(nil)

// NewStore opens the database, runs the schema migration, and returns
// the store. Rows older than ttl behave as misses.
func NewStore(storagePath string, ttl time.Duration) (*Store, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("sqlite store: ping: %w", err)
	}

	s := &Store{db: db, ttl: ttl}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("sqlite store: migrate: %w", err)
	}
	return s, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the stored enrichment for a URL, or domain.ErrNotFound
// when the row is missing or stale.
func (s *Store) Get(ctx context.Context, externalURL string) (domain.Enrichment, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT name, artist, artwork_url, raw_title, fetched_at
		FROM enrichments WHERE url = ?
	`, externalURL)

	var e domain.Enrichment
	var fetchedAt time.Time
	if err := row.Scan(&e.Name, &e.Artist, &e.ArtworkURL, &e.RawTitle, &fetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Enrichment{}, domain.ErrNotFound
		}
		return domain.Enrichment{}, fmt.Errorf("sqlite store: load enrichment: %w", err)
	}

	if s.ttl > 0 && time.Since(fetchedAt) > s.ttl {
		return domain.Enrichment{}, domain.ErrNotFound
	}
	return e, nil
}

// Put upserts the enrichment for a URL, refreshing its fetch timestamp.
func (s *Store) Put(ctx context.Context, externalURL string, e domain.Enrichment) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO enrichments (url, name, artist, artwork_url, raw_title, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			name=excluded.name,
			artist=excluded.artist,
			artwork_url=excluded.artwork_url,
			raw_title=excluded.raw_title,
			fetched_at=excluded.fetched_at;
	`, externalURL, e.Name, e.Artist, e.ArtworkURL, e.RawTitle, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("sqlite store: save enrichment: %w", err)
	}
	return nil
}

func (s *Store) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS enrichments (
		url TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		artist TEXT NOT NULL,
		artwork_url TEXT,
		raw_title TEXT,
		fetched_at DATETIME NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return err
	}
	return nil
}
