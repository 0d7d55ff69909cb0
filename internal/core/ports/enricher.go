package ports

import (
	"context"
	"errors"

	"github.com/hartwell-audio/daymix/internal/core/domain"
)

// ErrEnrichmentUnavailable indicates the provider could not produce
// metadata for a URL. Callers degrade to fallback values; this error
// never propagates into a response.
var ErrEnrichmentUnavailable = errors.New("enrichment unavailable")

// Enricher resolves third-party display metadata for a catalog item's
// external URL. Implementations must be safe for concurrent use.
type Enricher interface {
	Enrich(ctx context.Context, externalURL, fallbackName, fallbackArtist string) (domain.Enrichment, error)
}

// EnrichmentStore persists enrichments between process restarts. It sits
// behind the in-memory cache, so implementations may be slow.
type EnrichmentStore interface {
	Get(ctx context.Context, externalURL string) (domain.Enrichment, error)
	Put(ctx context.Context, externalURL string, e domain.Enrichment) error
}
