package guard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Prometheus metrics for failure budget tracking.
var (
	failuresRemaining = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hydrate_failures_remaining",
		Help: "Number of failures remaining in current budget window",
	})

	guardBlocksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hydrate_guard_blocks_total",
		Help: "Total number of loads blocked due to exhausted failure budget",
	})

	guardFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hydrate_guard_failures_total",
		Help: "Total number of failures recorded against the budget",
	})
)

// Tracker maintains the shared failure budget and gates loads.
type Tracker struct {
	redis  *redis.Client
	logger zerolog.Logger
	budget int
	window time.Duration
}

// NewTracker creates a new failure budget tracker with default budget and window.
func NewTracker(redisClient *redis.Client, logger zerolog.Logger) *Tracker {
	return &Tracker{
		redis:  redisClient,
		logger: logger,
		budget: DefaultBudget,
		window: DefaultWindow,
	}
}

// GetState retrieves the current budget state from Redis.
// Returns a full budget if no state exists or the window has expired.
func (t *Tracker) GetState(ctx context.Context) (*BudgetState, error) {
	// The three keys are written together; if any one is missing the
	// state is absent or partially evicted, and the only safe reading
	// is a fresh full budget.
	missing := false

	remaining, err := t.redis.Get(ctx, RedisKeyFailuresRemaining).Int()
	if err == redis.Nil {
		missing = true
	} else if err != nil {
		return nil, fmt.Errorf("get failures remaining: %w", err)
	}

	resetTimestamp, err := t.redis.Get(ctx, RedisKeyResetTimestamp).Int64()
	if err == redis.Nil {
		missing = true
	} else if err != nil {
		return nil, fmt.Errorf("get reset timestamp: %w", err)
	}

	lastUpdateStr, err := t.redis.Get(ctx, RedisKeyLastUpdate).Result()
	if err == redis.Nil {
		missing = true
	} else if err != nil {
		return nil, fmt.Errorf("get last update: %w", err)
	}

	if missing {
		t.logger.Debug().Msg("Failure budget state missing or incomplete in Redis, returning full budget")
		return t.freshState(), nil
	}

	var lastUpdate time.Time
	if lastUpdateStr != "" {
		if err := json.Unmarshal([]byte(lastUpdateStr), &lastUpdate); err != nil {
			return nil, fmt.Errorf("parse last update: %w", err)
		}
	}

	state := &BudgetState{
		FailuresRemaining: remaining,
		ResetAt:           time.Unix(resetTimestamp, 0),
		LastUpdate:        lastUpdate,
	}

	// Window passed: budget restores to full
	if state.Expired() {
		t.logger.Debug().
			Time("reset_at", state.ResetAt).
			Msg("Failure budget window expired, restoring full budget")
		return t.freshState(), nil
	}

	state.UpdateHealth()
	return state, nil
}

// RecordFailure spends one unit of the shared budget.
func (t *Tracker) RecordFailure(ctx context.Context) error {
	state, err := t.GetState(ctx)
	if err != nil {
		return fmt.Errorf("get budget state: %w", err)
	}

	now := time.Now()
	state.FailuresRemaining--
	if state.FailuresRemaining < 0 {
		state.FailuresRemaining = 0
	}
	state.LastUpdate = now
	state.UpdateHealth()

	// Store in Redis atomically
	pipe := t.redis.Pipeline()
	pipe.Set(ctx, RedisKeyFailuresRemaining, state.FailuresRemaining, 0)
	pipe.Set(ctx, RedisKeyResetTimestamp, state.ResetAt.Unix(), 0)

	lastUpdateJSON, err := json.Marshal(state.LastUpdate)
	if err != nil {
		return fmt.Errorf("marshal last update: %w", err)
	}
	pipe.Set(ctx, RedisKeyLastUpdate, lastUpdateJSON, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store budget state in redis: %w", err)
	}

	guardFailuresTotal.Inc()
	failuresRemaining.Set(float64(state.FailuresRemaining))

	logEvent := t.logger.Info().
		Int("failures_remaining", state.FailuresRemaining).
		Time("reset_at", state.ResetAt).
		Bool("is_healthy", state.IsHealthy)

	if state.NeedsCriticalBlock() {
		logEvent = t.logger.Error()
		logEvent.Msg("Failure budget exhausted - loads will be blocked")
	} else if state.NeedsWarning() {
		logEvent = t.logger.Warn()
		logEvent.Msg("Failure budget degrading")
	} else {
		logEvent.Msg("Failure budget state updated")
	}

	return nil
}

// ShouldAllow checks if a load should proceed given the current budget state.
// Returns false if loads are blocked due to an exhausted budget.
func (t *Tracker) ShouldAllow(ctx context.Context) (bool, error) {
	state, err := t.GetState(ctx)
	if err != nil {
		return false, fmt.Errorf("get budget state: %w", err)
	}

	if state.NeedsCriticalBlock() {
		t.logger.Error().
			Int("failures_remaining", state.FailuresRemaining).
			Dur("wait_duration", state.TimeUntilReset()).
			Msg("Failure budget exhausted - blocking load")

		guardBlocksTotal.Inc()
		return false, nil
	}

	if state.NeedsWarning() {
		t.logger.Warn().
			Int("failures_remaining", state.FailuresRemaining).
			Msg("Failure budget degrading - load allowed")
	}

	return true, nil
}

func (t *Tracker) freshState() *BudgetState {
	now := time.Now()
	return &BudgetState{
		FailuresRemaining: t.budget,
		ResetAt:           now.Add(t.window),
		LastUpdate:        now,
		IsHealthy:         true,
	}
}
