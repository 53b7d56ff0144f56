// Package observability provides Prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alcove_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency.
	DatabaseQueryLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "alcove_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// ListingRequests counts listing aggregations by scope and outcome.
	ListingRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alcove_listing_requests_total",
		Help: "Total listing aggregations by scope (user, latest) and outcome",
	}, []string{"scope", "outcome"})

	// CacheHits counts cache-aside hits per key prefix.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alcove_cache_hits_total",
		Help: "Total cache-aside hits by key prefix",
	}, []string{"prefix"})

	// CacheMisses counts cache-aside misses per key prefix.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alcove_cache_misses_total",
		Help: "Total cache-aside misses by key prefix",
	}, []string{"prefix"})
)
