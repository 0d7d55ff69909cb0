// Package metrics holds the Prometheus instrumentation for the mix
// service. A Registry is injected where it is needed rather than
// registered globally, so tests can each build their own.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics bundles every collector the service exposes.
type Metrics struct {
	Registry *prometheus.Registry

	MixRequests        *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	EnrichmentHits     prometheus.Counter
	EnrichmentMisses   prometheus.Counter
	EnrichmentFailures prometheus.Counter
}

// New builds a fresh registry with all service collectors registered,
// plus the standard Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		MixRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "daymix",
			Name:      "mix_requests_total",
			Help:      "Mix requests served, by time bucket and situation.",
		}, []string{"bucket", "situation"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "daymix",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and status code.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "code"}),
		EnrichmentHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "daymix",
			Name:      "enrichment_cache_hits_total",
			Help:      "Enrichment lookups answered from cache.",
		}),
		EnrichmentMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "daymix",
			Name:      "enrichment_cache_misses_total",
			Help:      "Enrichment lookups that went to the upstream provider.",
		}),
		EnrichmentFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "daymix",
			Name:      "enrichment_failures_total",
			Help:      "Enrichment lookups that failed after retries.",
		}),
	}

	reg.MustRegister(
		m.MixRequests,
		m.RequestDuration,
		m.EnrichmentHits,
		m.EnrichmentMisses,
		m.EnrichmentFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}
