// Package metrics provides the centralized Prometheus metrics registry for
// the hydrate library. All metrics are defined in their respective packages
// (hydrate, webfetch, cache, guard) to maintain modularity and avoid
// circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the hydrate library.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Orchestration Metrics (pkg/hydrate):
//   - hydrate_batch_items_total{result} (Counter): Batch items by result (success, failure)
//   - hydrate_batch_duration_seconds (Histogram): Batch load duration
//   - hydrate_child_loads_total{result} (Counter): Child loads by result
//   - hydrate_fanout_width (Histogram): Children per fan-out
//
// Fetch Metrics (pkg/webfetch):
//   - hydrate_fetch_requests_total{kind, status} (Counter): HTTP fetches by entity kind and status
//   - hydrate_fetch_duration_seconds{kind} (Histogram): Fetch duration by entity kind
//   - hydrate_fetch_errors_total{class} (Counter): Fetch errors by class (client, server, network)
//   - hydrate_retries_total{class} (Counter): Retry attempts by error class
//   - hydrate_retry_backoff_seconds{class} (Histogram): Backoff duration by error class
//   - hydrate_retry_exhausted_total{class} (Counter): Loads that exhausted max retries
//
// Cache Metrics (pkg/cache):
//   - hydrate_cache_hits_total{namespace} (Counter): Cache hits by namespace
//   - hydrate_cache_misses_total{namespace} (Counter): Cache misses by namespace
//   - hydrate_cache_errors_total{operation} (Counter): Cache operation errors
//
// Guard Metrics (pkg/guard):
//   - hydrate_failures_remaining (Gauge): Current failure budget
//   - hydrate_guard_blocks_total (Counter): Loads blocked by exhausted failure budget
//   - hydrate_guard_failures_total (Counter): Failures recorded against the budget
//
// Example Prometheus Queries:
//
//   # Batch Failure Rate
//   sum(rate(hydrate_batch_items_total{result="failure"}[5m])) /
//   sum(rate(hydrate_batch_items_total[5m]))
//
//   # Cache Hit Rate
//   sum(rate(hydrate_cache_hits_total[5m])) /
//   (sum(rate(hydrate_cache_hits_total[5m])) + sum(rate(hydrate_cache_misses_total[5m])))
//
//   # P95 Fetch Latency
//   histogram_quantile(0.95, rate(hydrate_fetch_duration_seconds_bucket[5m]))
//
//   # Failure Budget Status
//   hydrate_failures_remaining < 5
