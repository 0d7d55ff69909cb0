package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hartwell-audio/daymix/internal/core/domain"
)

// maxEnrichConcurrency caps the parallel oEmbed lookups for one
// request. Blocks share tracks rarely, so this is mostly a politeness
// limit on the upstream.
const maxEnrichConcurrency = 8

type mixResponse struct {
	GeneratedAt      string     `json:"generated_at"`
	LocalTimeDisplay string     `json:"local_time_display"`
	TimeBucket       string     `json:"time_bucket"`
	Blocks           []blockDTO `json:"blocks"`
}

type blockDTO struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	WhyNow   string     `json:"why_now,omitempty"`
	Tracks   []trackDTO `json:"tracks"`
}

type trackDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Artist       string  `json:"artist"`
	Reason       string  `json:"reason"`
	ReasonSignal string  `json:"reason_signal,omitempty"`
	TrackURL     string  `json:"track_url"`
	ArtworkURL   *string `json:"artwork_url"`
}

// GetMix builds the recommendation response for the caller's moment.
// Unknown or malformed query values fall back to defaults rather than
// erroring; the endpoint always has an answer.
func (h *Handler) GetMix(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	reqCtx := h.resolver.Resolve(q.Get("time"), q.Get("situation"), q.Get("tweak"), q.Get("engine"))

	result := h.mixer.BuildMix(reqCtx)
	if h.metrics != nil {
		h.metrics.MixRequests.WithLabelValues(string(reqCtx.Bucket), string(reqCtx.Situation)).Inc()
	}

	enriched := h.enrichAll(r.Context(), result)
	writeJSON(w, http.StatusOK, h.toResponse(result, enriched))
}

// enrichAll fans out one lookup per distinct track URL. Failures and
// timeouts leave the URL out of the map; mapping falls back to catalog
// metadata.
func (h *Handler) enrichAll(ctx context.Context, result domain.MixResult) map[string]domain.Enrichment {
	if h.enricher == nil {
		return nil
	}

	type lookup struct {
		url, name, artist string
	}
	seen := make(map[string]bool)
	var lookups []lookup
	for _, block := range result.Blocks {
		for _, sel := range block.Items {
			if seen[sel.Item.ExternalURL] {
				continue
			}
			seen[sel.Item.ExternalURL] = true
			lookups = append(lookups, lookup{sel.Item.ExternalURL, sel.Item.Title, sel.Item.Creator})
		}
	}

	ctx, cancel := context.WithTimeout(ctx, h.opts.EnrichTimeout)
	defer cancel()

	var mu sync.Mutex
	enriched := make(map[string]domain.Enrichment, len(lookups))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxEnrichConcurrency)
	for _, l := range lookups {
		g.Go(func() error {
			e, err := h.enricher.Enrich(ctx, l.url, l.name, l.artist)
			if err != nil {
				// Fallback metadata covers this track; not a request error.
				return nil
			}
			mu.Lock()
			enriched[l.url] = e
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return enriched
}

func (h *Handler) toResponse(result domain.MixResult, enriched map[string]domain.Enrichment) mixResponse {
	resp := mixResponse{
		GeneratedAt:      result.GeneratedAt.UTC().Format(time.RFC3339),
		LocalTimeDisplay: result.LocalTimeDisplay,
		TimeBucket:       string(result.Bucket),
		Blocks:           make([]blockDTO, 0, len(result.Blocks)),
	}
	for _, block := range result.Blocks {
		dto := blockDTO{
			ID:       block.ID,
			Title:    block.Title,
			Subtitle: block.Subtitle,
			WhyNow:   block.WhyNow,
			Tracks:   make([]trackDTO, 0, len(block.Items)),
		}
		for _, sel := range block.Items {
			track := trackDTO{
				ID:           sel.Item.ID,
				Name:         sel.Item.Title,
				Artist:       sel.Item.Creator,
				Reason:       sel.Reason,
				ReasonSignal: sel.ReasonSignal,
				TrackURL:     sel.Item.ExternalURL,
			}
			if e, ok := enriched[sel.Item.ExternalURL]; ok {
				if e.Name != "" {
					track.Name = e.Name
				}
				if e.Artist != "" {
					track.Artist = e.Artist
				}
				if e.ArtworkURL != "" {
					artwork := e.ArtworkURL
					track.ArtworkURL = &artwork
				}
			}
			dto.Tracks = append(dto.Tracks, track)
		}
		resp.Blocks = append(resp.Blocks, dto)
	}
	return resp
}
