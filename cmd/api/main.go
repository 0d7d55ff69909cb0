package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/hartwell-audio/daymix/internal/adapters/enrich"
	"github.com/hartwell-audio/daymix/internal/adapters/rest"
	"github.com/hartwell-audio/daymix/internal/adapters/spotify"
	"github.com/hartwell-audio/daymix/internal/adapters/sqlite"
	"github.com/hartwell-audio/daymix/internal/catalog"
	"github.com/hartwell-audio/daymix/internal/config"
	"github.com/hartwell-audio/daymix/internal/core/ports"
	"github.com/hartwell-audio/daymix/internal/core/services"
	"github.com/hartwell-audio/daymix/internal/metrics"
	"github.com/hartwell-audio/daymix/internal/worker"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("configuration failed")
	}
	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal().Err(err).Msg("timezone failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Driven adapters
	var provider ports.Enricher
	if cfg.Spotify.UseWebAPI() {
		provider = spotify.NewAPIClient(ctx, cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, "")
		logger.Info().Msg("enrichment via Spotify Web API")
	} else {
		provider = spotify.NewClient(nil, cfg.Spotify.OEmbedURL)
		logger.Info().Msg("enrichment via Spotify oEmbed")
	}

	var store ports.EnrichmentStore
	if cfg.Cache.SQLitePath != "" {
		sqlStore, err := sqlite.NewStore(cfg.Cache.SQLitePath, cfg.Cache.TTL)
		if err != nil {
			logger.Fatal().Err(err).Msg("enrichment store failed")
		}
		defer sqlStore.Close()
		store = sqlStore
	}

	m := metrics.New()
	enricher := enrich.NewCache(provider, store, cfg.Cache.TTL, cfg.Cache.Size, logger).
		WithCounters(m.EnrichmentHits, m.EnrichmentMisses, m.EnrichmentFailures)

	// 3. Core services
	source := catalog.NewStatic()
	resolver := services.NewResolver(loc)
	mixer := services.NewMixer(source, cfg.Engine.ItemsPerBlock, logger)

	// 4. Warmup pool
	if cfg.Cache.Warmup {
		pool := worker.NewPool(enricher, len(source.Items()), logger)
		pool.Start(2)
		defer pool.Stop()
		pool.WarmCatalog(source.Items())
	}

	// 5. Driving adapter and server
	handler := rest.NewHandler(&resolver, mixer, enricher, m, logger, rest.Options{
		RateLimit:      cfg.Server.RateLimit,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("daymix API listening")
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown error")
		}
	}
}
