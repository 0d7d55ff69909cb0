// Package rest is the HTTP interface for the mix service. It parses
// request parameters, delegates to the core services, and maps the
// result onto the wire format.
package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/hartwell-audio/daymix/internal/core/ports"
	"github.com/hartwell-audio/daymix/internal/core/services"
	"github.com/hartwell-audio/daymix/internal/metrics"
)

// Options tunes the HTTP surface. Zero values fall back to sane
// defaults in NewHandler.
type Options struct {
	RateLimit      int           // requests per minute per IP on /mix
	EnrichTimeout  time.Duration // budget for the enrichment fan-out
	AllowedOrigins []string
}

// Handler wires the router, core services, and enrichment together.
type Handler struct {
	router   chi.Router
	resolver *services.Resolver
	mixer    *services.Mixer
	enricher ports.Enricher // may be nil
	metrics  *metrics.Metrics
	logger   zerolog.Logger
	opts     Options
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(resolver *services.Resolver, mixer *services.Mixer, enricher ports.Enricher, m *metrics.Metrics, logger zerolog.Logger, opts Options) *Handler {
	if opts.RateLimit <= 0 {
		opts.RateLimit = 60
	}
	if opts.EnrichTimeout <= 0 {
		opts.EnrichTimeout = 2 * time.Second
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	h := &Handler{
		router:   chi.NewRouter(),
		resolver: resolver,
		mixer:    mixer,
		enricher: enricher,
		metrics:  m,
		logger:   logger.With().Str("component", "rest").Logger(),
		opts:     opts,
	}
	h.routes()
	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.Use(requestID)
	h.router.Use(h.requestLogger)
	h.router.Use(middleware.Recoverer)
	h.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	h.router.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(h.opts.RateLimit, time.Minute))
		r.Get("/mix", h.GetMix)
	})

	h.router.Get("/healthz", h.HealthCheck)
	if h.metrics != nil {
		h.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.metrics.Registry, promhttp.HandlerOpts{}))
	}
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestID assigns every request a UUID, echoed in the response
// headers so client reports can be matched with server logs.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		h.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", elapsed).
			Str("request_id", ww.Header().Get("X-Request-ID")).
			Msg("request")

		if h.metrics != nil {
			h.metrics.RequestDuration.
				WithLabelValues(r.URL.Path, strconv.Itoa(ww.Status())).
				Observe(elapsed.Seconds())
		}
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent, so an encode failure has no recovery.
	_ = json.NewEncoder(w).Encode(body)
}
