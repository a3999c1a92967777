package hydrate

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for child fan-out operations.
var (
	childLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hydrate_child_loads_total",
		Help: "Total child loads by result (success, failure)",
	}, []string{"result"})

	fanOutWidth = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hydrate_fanout_width",
		Help:    "Number of children loaded per fan-out",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})
)

// FanOut loads all children of one item concurrently.
//
// Child identifiers come from the extractor; every child load is started
// before any result is awaited, and results are assembled in extraction
// order regardless of completion timing.
type FanOut[T, C any] struct {
	loader    Loader[C]
	extractor ChildExtractor[T]
}

// NewFanOut creates a fan-out over the given child loader and extractor.
func NewFanOut[T, C any](loader Loader[C], extractor ChildExtractor[T]) *FanOut[T, C] {
	if loader == nil {
		panic("child loader cannot be nil")
	}
	if extractor == nil {
		panic("child extractor cannot be nil")
	}
	return &FanOut[T, C]{
		loader:    loader,
		extractor: extractor,
	}
}

// LoadChildren loads every child of item concurrently and returns them
// in extraction order.
//
// The call is all-or-nothing: if any single child load fails, the whole
// call fails with a LoadError carrying that child's identifier. Sibling
// loads still in flight are allowed to finish; their results are
// discarded. Failure isolation across items happens one level up, in
// BatchLoader.
func (f *FanOut[T, C]) LoadChildren(ctx context.Context, item T) ([]C, error) {
	ids := f.extractor.ChildIDs(item)
	fanOutWidth.Observe(float64(len(ids)))

	if len(ids) == 0 {
		return []C{}, nil
	}

	// Each goroutine writes only its own slot, so the slice needs no
	// mutex and extraction order is preserved by construction.
	children := make([]C, len(ids))
	errCh := make(chan error, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(slot int, id string) {
			defer wg.Done()

			child, err := f.loader.Load(ctx, id)
			if err != nil {
				childLoadsTotal.WithLabelValues("failure").Inc()
				errCh <- &LoadError{ID: id, Err: err}
				return
			}

			childLoadsTotal.WithLabelValues("success").Inc()
			children[slot] = child
		}(i, id)
	}

	// Barrier: wait for every child to settle before reporting.
	wg.Wait()
	close(errCh)

	if len(errCh) > 0 {
		return nil, <-errCh
	}

	return children, nil
}
