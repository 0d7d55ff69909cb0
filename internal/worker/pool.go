// Package worker runs background enrichment warmup so that the first
// mix request after startup does not pay the full fan-out cost.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hartwell-audio/daymix/internal/core/domain"
	"github.com/hartwell-audio/daymix/internal/core/ports"
)

const defaultJobTimeout = 10 * time.Second

// Job is a single warmup unit: one catalog item to enrich.
type Job struct {
	Item domain.CatalogItem
}

// Pool is a fixed-size worker pool that pre-warms the enrichment cache.
// Submit never blocks; when the queue is full the job is dropped, since
// warmup is best-effort and the request path will fill the cache anyway.
type Pool struct {
	enricher ports.Enricher
	jobs     chan Job
	wg       sync.WaitGroup
	logger   zerolog.Logger

	mu     sync.Mutex // guards closed and the send in Submit
	closed bool
}

func NewPool(enricher ports.Enricher, queueSize int, logger zerolog.Logger) *Pool {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Pool{
		enricher: enricher,
		jobs:     make(chan Job, queueSize),
		logger:   logger.With().Str("component", "warmup_pool").Logger(),
	}
}

// Start launches the given number of workers. Call Stop to drain and
// shut them down.
func (p *Pool) Start(workers int) {
	if workers <= 0 {
		workers = 2
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
	p.logger.Info().Int("workers", workers).Msg("warmup pool started")
}

// Stop closes the queue and waits for in-flight jobs to finish. Safe to
// call more than once and concurrently with Submit.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// Submit enqueues a warmup job. Returns false if the queue is full or
// the pool is stopping. Safe for concurrent use with Stop; the send
// happens under the same lock that closes the queue.
func (p *Pool) Submit(job Job) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		p.logger.Debug().Str("item_id", job.Item.ID).Msg("warmup queue full, dropping job")
		return false
	}
}

// WarmCatalog submits every catalog item for enrichment. Items that do
// not fit in the queue are skipped.
func (p *Pool) WarmCatalog(items []domain.CatalogItem) {
	submitted := 0
	for _, item := range items {
		if p.Submit(Job{Item: item}) {
			submitted++
		}
	}
	p.logger.Info().Int("submitted", submitted).Int("total", len(items)).Msg("catalog warmup queued")
}

func (p *Pool) run() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.process(job)
	}
}

func (p *Pool) process(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultJobTimeout)
	defer cancel()

	_, err := p.enricher.Enrich(ctx, job.Item.ExternalURL, job.Item.Title, job.Item.Creator)
	if err != nil {
		p.logger.Debug().Err(err).Str("item_id", job.Item.ID).Msg("warmup enrichment failed")
		return
	}
	p.logger.Debug().Str("item_id", job.Item.ID).Msg("warmup enrichment cached")
}
