// Package spotify resolves display metadata for catalog items from
// Spotify. The default client uses the public oEmbed endpoint, which
// needs no credentials; when client credentials are configured the
// richer Web API client is used instead.
package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/hartwell-audio/daymix/internal/core/domain"
	"github.com/hartwell-audio/daymix/internal/core/ports"
)

const defaultOEmbedBaseURL = "https://open.spotify.com"

// Client is the oEmbed-backed enricher.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxRetries  int
	baseBackoff time.Duration
	breaker     *gobreaker.CircuitBreaker[domain.Enrichment]
}

var _ ports.Enricher = (*Client)(nil)

// NewClient constructs an oEmbed client. A nil httpClient gets a bounded
// default; an empty baseURL targets the public endpoint.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultOEmbedBaseURL
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		maxRetries:  defaultMaxRetries,
		baseBackoff: defaultBackoff,
		breaker: gobreaker.NewCircuitBreaker[domain.Enrichment](gobreaker.Settings{
			Name:    "spotify-oembed",
			Timeout: 30 * time.Second,
		}),
	}
}

// Enrich fetches oEmbed metadata for a track URL. oEmbed carries no
// artist field, so the fallback artist passes through; the raw title is
// kept alongside a cleaned display name.
func (c *Client) Enrich(ctx context.Context, externalURL, fallbackName, fallbackArtist string) (domain.Enrichment, error) {
	return c.breaker.Execute(func() (domain.Enrichment, error) {
		return c.fetch(ctx, externalURL, fallbackName, fallbackArtist)
	})
}

func (c *Client) fetch(ctx context.Context, externalURL, fallbackName, fallbackArtist string) (domain.Enrichment, error) {
	endpoint := fmt.Sprintf("%s/oembed?url=%s", c.baseURL, url.QueryEscape(externalURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Enrichment{}, fmt.Errorf("spotify adapter: %w", err)
	}

	resp, err := doWithRetry(c.httpClient, req, c.maxRetries, c.baseBackoff)
	if err != nil {
		return domain.Enrichment{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Enrichment{}, fmt.Errorf("spotify adapter: status %d: %w", resp.StatusCode, ports.ErrEnrichmentUnavailable)
	}

	var body oEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Enrichment{}, fmt.Errorf("spotify adapter: %w", err)
	}

	return domain.Enrichment{
		Name:       fallbackIfEmpty(displayTitle(body.Title), fallbackName),
		Artist:     fallbackArtist,
		ArtworkURL: body.ThumbnailURL,
		RawTitle:   body.Title,
	}, nil
}
