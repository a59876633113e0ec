// Package observability holds the Prometheus collector, the OpenTelemetry
// tracer setup and the HTTP middleware that feeds both.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search results as recorded by the search counter
const (
	SearchResultHit         = "hit"
	SearchResultMiss        = "miss"
	SearchResultRateLimited = "rate_limited"
)

// Collector holds all Prometheus metrics for the application. A nil
// *Collector is valid and records nothing, so services can run without
// metrics enabled.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	SearchRequests        *prometheus.CounterVec
	PipelineRuns          *prometheus.CounterVec
	InfographicsGenerated prometheus.Counter
}

// NewCollector creates a collector registered on its own registry
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		SearchRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_requests_total",
				Help: "Search requests by cache outcome",
			},
			[]string{"result"},
		),
		PipelineRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pipeline_runs_total",
				Help: "Pipeline runs by final status",
			},
			[]string{"status"},
		),
		InfographicsGenerated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "infographics_generated_total",
				Help: "Total number of rendered infographics",
			},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.SearchRequests,
		c.PipelineRuns,
		c.InfographicsGenerated,
	)

	return c
}

// RecordSearch counts one search request with the given result label
func (c *Collector) RecordSearch(result string) {
	if c == nil {
		return
	}
	c.SearchRequests.WithLabelValues(result).Inc()
}

// RecordPipelineRun counts one pipeline run
func (c *Collector) RecordPipelineRun(status string) {
	if c == nil {
		return
	}
	c.PipelineRuns.WithLabelValues(status).Inc()
}

// RecordInfographicGenerated counts one rendered infographic
func (c *Collector) RecordInfographicGenerated() {
	if c == nil {
		return
	}
	c.InfographicsGenerated.Inc()
}

// GetRegistry returns the Prometheus registry for this collector
func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collector's registry in the Prometheus text format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
