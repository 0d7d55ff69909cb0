package spotify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/hartwell-audio/daymix/internal/core/domain"
	"github.com/hartwell-audio/daymix/internal/core/ports"
)

const (
	defaultAPIBaseURL = "https://api.spotify.com"
	defaultTokenURL   = "https://accounts.spotify.com/api/token"
)

// APIClient is the Web API-backed enricher. Unlike oEmbed it returns a
// real artist name and full-size album art, but needs client credentials.
type APIClient struct {
	httpClient  *http.Client
	baseURL     string
	maxRetries  int
	baseBackoff time.Duration
	breaker     *gobreaker.CircuitBreaker[domain.Enrichment]
}

var _ ports.Enricher = (*APIClient)(nil)

// NewAPIClient constructs a Web API client using the OAuth2 client
// credentials flow; the returned http.Client refreshes tokens itself.
func NewAPIClient(ctx context.Context, clientID, clientSecret, baseURL string) *APIClient {
	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     defaultTokenURL,
	}
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	httpClient := cfg.Client(ctx)
	httpClient.Timeout = 5 * time.Second

	return &APIClient{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		maxRetries:  defaultMaxRetries,
		baseBackoff: defaultBackoff,
		breaker: gobreaker.NewCircuitBreaker[domain.Enrichment](gobreaker.Settings{
			Name:    "spotify-api",
			Timeout: 30 * time.Second,
		}),
	}
}

// Enrich resolves the track behind a share URL via GET /v1/tracks/{id}.
func (c *APIClient) Enrich(ctx context.Context, externalURL, fallbackName, fallbackArtist string) (domain.Enrichment, error) {
	trackID, ok := trackIDFromURL(externalURL)
	if !ok {
		return domain.Enrichment{}, fmt.Errorf("spotify adapter: no track id in %q: %w", externalURL, ports.ErrEnrichmentUnavailable)
	}

	return c.breaker.Execute(func() (domain.Enrichment, error) {
		return c.fetch(ctx, trackID, fallbackName, fallbackArtist)
	})
}

func (c *APIClient) fetch(ctx context.Context, trackID, fallbackName, fallbackArtist string) (domain.Enrichment, error) {
	endpoint := fmt.Sprintf("%s/v1/tracks/%s", c.baseURL, trackID)
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

	var tr apiTrack
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return domain.Enrichment{}, fmt.Errorf("spotify adapter: %w", err)
	}

	artist := fallbackArtist
	if len(tr.Artists) > 0 && tr.Artists[0].Name != "" {
		artist = tr.Artists[0].Name
	}
	artwork := ""
	if len(tr.Album.Images) > 0 {
		artwork = tr.Album.Images[0].URL
	}

	return domain.Enrichment{
		Name:       fallbackIfEmpty(displayTitle(tr.Name), fallbackName),
		Artist:     artist,
		ArtworkURL: artwork,
		RawTitle:   tr.Name,
	}, nil
}

// trackIDFromURL extracts the id from an open.spotify.com/track/<id> URL.
func trackIDFromURL(externalURL string) (string, bool) {
	const marker = "/track/"
	idx := strings.Index(externalURL, marker)
	if idx == -1 {
		return "", false
	}
	id := externalURL[idx+len(marker):]
	if q := strings.IndexByte(id, '?'); q != -1 {
		id = id[:q]
	}
	id = strings.TrimSuffix(id, "/")
	if id == "" {
		return "", false
	}
	return id, true
}
