// Package metrics registers the Prometheus collectors shared by the HTTP
// executor and the TMDB resource layer. Collectors live in the default
// registry so a host application can expose them with promhttp.Handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Executor metrics
var (
	// HTTPAttempts counts physical attempts by outcome ("success", "http_error",
	// "rate_limited", "network_error", "timeout", "decode_error").
	HTTPAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_http_attempts_total",
			Help: "Total number of physical HTTP attempts made against the TMDB API",
		},
		[]string{"outcome"},
	)

	// HTTPRetries counts scheduled retries by error kind.
	HTTPRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_http_retries_total",
			Help: "Total number of HTTP retries scheduled",
		},
		[]string{"reason"},
	)

	// RetryWaits observes the delay slept before a retry.
	RetryWaits = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tmdb_http_retry_wait_seconds",
			Help:    "Duration slept before retrying an HTTP request",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"reason"},
	)

	// RequestDuration observes the latency of a logical call including retries.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tmdb_http_request_duration_seconds",
			Help:    "Duration of logical TMDB requests in seconds, retries included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "result"},
	)
)

// Resource cache metrics
var (
	// CacheLookups counts accessor cache lookups by result ("hit", "miss", "bypass").
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_cache_lookups_total",
			Help: "Total number of response cache lookups",
		},
		[]string{"result"},
	)

	// CacheEntries tracks the physical size of the response caches, summed
	// over every client in the process.
	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tmdb_cache_entries",
			Help: "Number of entries physically stored in the response caches of all clients",
		},
	)
)
