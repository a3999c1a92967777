package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks cache hits by namespace.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hydrate_cache_hits_total",
			Help: "Total number of loader cache hits",
		},
		[]string{"namespace"},
	)

	// CacheMisses tracks cache misses by namespace.
	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hydrate_cache_misses_total",
			Help: "Total number of loader cache misses",
		},
		[]string{"namespace"},
	)

	// CacheErrors tracks cache operation errors.
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hydrate_cache_errors_total",
			Help: "Total number of cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)
