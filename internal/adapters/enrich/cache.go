// Package enrich decorates an Enricher with caching and duplicate
// suppression. The core never notices cache state; it only ever sees an
// Enrichment or a fallback.
package enrich

import (
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/hartwell-audio/daymix/internal/core/domain"
	"github.com/hartwell-audio/daymix/internal/core/ports"
)

const (
	// DefaultTTL matches the upstream guidance of one lookup per track
	// per day.
	DefaultTTL = 24 * time.Hour

	defaultCacheSize = 512
)

type cacheEntry struct {
	enrichment domain.Enrichment
	negative   bool
}

// Cache wraps an Enricher with an in-memory TTL cache, an optional
// persistent store, and singleflight dedupe so concurrent block assembly
// never issues the same lookup twice. Failures are cached negatively for
// the same TTL to avoid hammering a failing provider.
type Cache struct {
	inner  ports.Enricher
	store  ports.EnrichmentStore // may be nil
	memory *lru.LRU[string, cacheEntry]
	group  singleflight.Group
	logger zerolog.Logger

	hits     prometheus.Counter // may be nil
	misses   prometheus.Counter
	failures prometheus.Counter
}

var _ ports.Enricher = (*Cache)(nil)

// WithCounters attaches hit/miss/failure counters. All three must be
// set together; nil counters disable instrumentation.
func (c *Cache) WithCounters(hits, misses, failures prometheus.Counter) *Cache {
	c.hits = hits
	c.misses = misses
	c.failures = failures
	return c
}

func (c *Cache) countHit() {
	if c.hits != nil {
		c.hits.Inc()
	}
}

func (c *Cache) countMiss() {
	if c.misses != nil {
		c.misses.Inc()
	}
}

func (c *Cache) countFailure() {
	if c.failures != nil {
		c.failures.Inc()
	}
}

// NewCache builds the caching decorator. store may be nil when no
// persistence is configured.
func NewCache(inner ports.Enricher, store ports.EnrichmentStore, ttl time.Duration, size int, logger zerolog.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if size <= 0 {
		size = defaultCacheSize
	}
	return &Cache{
		inner:  inner,
		store:  store,
		memory: lru.NewLRU[string, cacheEntry](size, nil, ttl),
		logger: logger.With().Str("component", "enrich-cache").Logger(),
	}
}

// Enrich serves from memory, then the persistent store, then the wrapped
// provider. A provider failure is recorded as a negative entry and
// surfaces as ErrEnrichmentUnavailable; it never panics or propagates
// transport errors upward.
func (c *Cache) Enrich(ctx context.Context, externalURL, fallbackName, fallbackArtist string) (domain.Enrichment, error) {
	if entry, ok := c.memory.Get(externalURL); ok {
		c.countHit()
		if entry.negative {
			return domain.Enrichment{}, ports.ErrEnrichmentUnavailable
		}
		return entry.enrichment, nil
	}
	c.countMiss()

	v, err, _ := c.group.Do(externalURL, func() (interface{}, error) {
		return c.lookup(ctx, externalURL, fallbackName, fallbackArtist)
	})
	if err != nil {
		return domain.Enrichment{}, err
	}
	return v.(domain.Enrichment), nil
}

func (c *Cache) lookup(ctx context.Context, externalURL, fallbackName, fallbackArtist string) (domain.Enrichment, error) {
	// Re-check under singleflight: a concurrent caller may have filled
	// the entry while we waited.
	if entry, ok := c.memory.Get(externalURL); ok {
		if entry.negative {
			return domain.Enrichment{}, ports.ErrEnrichmentUnavailable
		}
		return entry.enrichment, nil
	}

	if c.store != nil {
		if stored, err := c.store.Get(ctx, externalURL); err == nil {
			c.memory.Add(externalURL, cacheEntry{enrichment: stored})
			return stored, nil
		} else if !errors.Is(err, domain.ErrNotFound) {
			c.logger.Warn().Err(err).Str("url", externalURL).Msg("enrichment store read failed")
		}
	}

	fetched, err := c.inner.Enrich(ctx, externalURL, fallbackName, fallbackArtist)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", externalURL).Msg("enrichment failed, caching negative result")
		c.countFailure()
		c.memory.Add(externalURL, cacheEntry{negative: true})
		return domain.Enrichment{}, ports.ErrEnrichmentUnavailable
	}

	c.memory.Add(externalURL, cacheEntry{enrichment: fetched})
	if c.store != nil {
		if err := c.store.Put(ctx, externalURL, fetched); err != nil {
			c.logger.Warn().Err(err).Str("url", externalURL).Msg("enrichment store write failed")
		}
	}
	return fetched, nil
}
