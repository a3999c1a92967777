package hydrate

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for batch operations.
var (
	batchItemsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hydrate_batch_items_total",
		Help: "Total batch items by result (success, failure)",
	}, []string{"result"})

	batchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hydrate_batch_duration_seconds",
		Help:    "Batch load duration in seconds",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	})
)

// BatchLoader loads many items with their children concurrently and
// partitions the outcomes per identifier.
type BatchLoader[T, C any] struct {
	hydrator *Hydrator[T, C]
	logger   zerolog.Logger
}

// NewBatchLoader creates a batch loader over the given hydrator.
func NewBatchLoader[T, C any](hydrator *Hydrator[T, C]) *BatchLoader[T, C] {
	if hydrator == nil {
		panic("hydrator cannot be nil")
	}
	return &BatchLoader[T, C]{
		hydrator: hydrator,
		logger:   log.With().Str("component", "batch-loader").Logger(),
	}
}

// LoadAll loads every identifier in ids concurrently and returns the
// outcomes partitioned into successes and failures.
//
// The call never fails as a whole; per-identifier failures land in the
// Failures slice tagged with their identifier. Every load is started
// before any result is awaited, a failing identifier has no effect on
// its siblings, and the call returns only after every identifier has
// settled. Successes and failures are each ordered by input position,
// not completion order. Duplicate identifiers are loaded and reported
// once per occurrence.
func (b *BatchLoader[T, C]) LoadAll(ctx context.Context, ids []string) Partitioned[ItemWithChildren[T, C]] {
	start := time.Now()
	defer func() {
		batchDuration.Observe(time.Since(start).Seconds())
	}()

	b.logger.Debug().
		Int("batch_size", len(ids)).
		Msg("Starting batch load")

	// One slot per input position; each goroutine settles exactly one.
	outcomes := make([]Outcome[ItemWithChildren[T, C]], len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(slot int, id string) {
			defer wg.Done()

			value, err := b.hydrator.LoadItem(ctx, id)
			outcomes[slot] = Outcome[ItemWithChildren[T, C]]{
				ID:    id,
				Value: value,
				Err:   err,
			}
		}(i, id)
	}

	// Barrier: the batch settles only after every identifier has.
	wg.Wait()

	// Sequential fold over settled outcomes, in input order. Only the
	// aggregation is sequential; issuance above was fully concurrent.
	var result Partitioned[ItemWithChildren[T, C]]
	for _, o := range outcomes {
		if o.Failed() {
			batchItemsTotal.WithLabelValues("failure").Inc()
			result.Failures = append(result.Failures, Failure{
				ID:  o.ID,
				Err: o.Err,
			})
			continue
		}

		batchItemsTotal.WithLabelValues("success").Inc()
		result.Successes = append(result.Successes, Success[ItemWithChildren[T, C]]{
			ID:    o.ID,
			Value: o.Value,
		})
	}

	logEvent := b.logger.Info()
	if len(result.Failures) > 0 {
		logEvent = b.logger.Warn()
	}
	logEvent.
		Int("batch_size", len(ids)).
		Int("successes", len(result.Successes)).
		Int("failures", len(result.Failures)).
		Dur("duration", time.Since(start)).
		Msg("Batch load complete")

	return result
}
