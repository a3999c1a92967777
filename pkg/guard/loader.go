package guard

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sternrassler/hydrate/pkg/hydrate"
)

// ErrBudgetExhausted is returned when a load is blocked by the failure budget.
var ErrBudgetExhausted = errors.New("failure budget exhausted")

// GuardedLoader wraps a hydrate.Loader with the shared failure budget.
//
// Each load first checks the budget; blocked loads fail fast with
// ErrBudgetExhausted without touching the wrapped loader. Failures of
// the wrapped loader spend budget.
type GuardedLoader[T any] struct {
	inner   hydrate.Loader[T]
	tracker *Tracker
}

// NewGuardedLoader creates a budget-gated decorator around inner.
func NewGuardedLoader[T any](inner hydrate.Loader[T], tracker *Tracker) *GuardedLoader[T] {
	if inner == nil {
		panic("inner loader cannot be nil")
	}
	if tracker == nil {
		panic("tracker cannot be nil")
	}
	return &GuardedLoader[T]{
		inner:   inner,
		tracker: tracker,
	}
}

// Load implements hydrate.Loader.
func (g *GuardedLoader[T]) Load(ctx context.Context, id string) (T, error) {
	var zero T

	allowed, err := g.tracker.ShouldAllow(ctx)
	if err != nil {
		return zero, fmt.Errorf("budget check: %w", err)
	}
	if !allowed {
		return zero, ErrBudgetExhausted
	}

	value, err := g.inner.Load(ctx, id)
	if err != nil {
		if recErr := g.tracker.RecordFailure(ctx); recErr != nil {
			g.tracker.logger.Warn().Err(recErr).Msg("Failed to record failure against budget")
		}
		return zero, err
	}

	return value, nil
}
