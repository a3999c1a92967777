package webfetch

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/Sternrassler/hydrate/pkg/hydrate"
)

// Prometheus metrics for retry operations.
var (
	retriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hydrate_retries_total",
		Help: "Total number of retry attempts by error class",
	}, []string{"class"})

	retryBackoffSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hydrate_retry_backoff_seconds",
		Help:    "Backoff duration for retries by error class",
		Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"class"})

	retryExhaustedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hydrate_retry_exhausted_total",
		Help: "Total number of times retry attempts were exhausted by error class",
	}, []string{"class"})
)

// RetryConfig holds the configuration for retry logic.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including the initial load).
	MaxAttempts int

	// InitialBackoff is the initial backoff duration.
	InitialBackoff time.Duration

	// MaxBackoff is the maximum backoff duration.
	MaxBackoff time.Duration

	// BackoffMultiplier is the multiplier for exponential backoff.
	BackoffMultiplier float64
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:       3,
		InitialBackoff:    1 * time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

// RetryConfigForErrorClass returns the appropriate retry configuration for an error class.
func RetryConfigForErrorClass(errorClass ErrorClass) RetryConfig {
	switch errorClass {
	case ErrorClassServer:
		// 5xx server errors - shorter backoff
		return RetryConfig{
			MaxAttempts:       3,
			InitialBackoff:    1 * time.Second,
			MaxBackoff:        10 * time.Second,
			BackoffMultiplier: 2.0,
		}
	case ErrorClassNetwork:
		// Network errors - medium backoff
		return RetryConfig{
			MaxAttempts:       3,
			InitialBackoff:    2 * time.Second,
			MaxBackoff:        30 * time.Second,
			BackoffMultiplier: 2.0,
		}
	default:
		return DefaultRetryConfig()
	}
}

// RetryLoader wraps a hydrate.Loader with class-aware exponential backoff.
//
// Retry lives here, at the capability layer, so the orchestration core
// stays retry-free: wrap the loader, then hand the wrapped loader to the
// core. Client errors (4xx) and errors this package did not classify are
// never retried.
type RetryLoader[T any] struct {
	inner    hydrate.Loader[T]
	config   RetryConfig
	adaptive bool
}

// NewRetryLoader creates a retrying decorator around inner.
// A zero config enables class-adaptive backoff: the first classified
// failure selects the backoff profile for its error class via
// RetryConfigForErrorClass.
func NewRetryLoader[T any](inner hydrate.Loader[T], config RetryConfig) *RetryLoader[T] {
	if inner == nil {
		panic("inner loader cannot be nil")
	}
	adaptive := config.MaxAttempts <= 0
	if adaptive {
		config = DefaultRetryConfig()
	}
	return &RetryLoader[T]{
		inner:    inner,
		config:   config,
		adaptive: adaptive,
	}
}

// Load implements hydrate.Loader with retry on retriable failures.
func (r *RetryLoader[T]) Load(ctx context.Context, id string) (T, error) {
	var value T
	err := retryWithBackoff(ctx, r.config, r.adaptive, func() error {
		v, err := r.inner.Load(ctx, id)
		if err == nil {
			value = v
		}
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// retryWithBackoff executes a function with exponential backoff retry logic.
// It respects context cancellation and adds jitter to prevent thundering herd.
func retryWithBackoff(ctx context.Context, config RetryConfig, adaptive bool, fn func() error) error {
	var lastErr error
	backoff := config.InitialBackoff

	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			if attempt > 1 {
				log.Info().
					Int("attempt", attempt).
					Msg("Load succeeded after retry")
			}
			return nil
		}

		lastErr = err
		errorClass := classify(err)

		if !shouldRetry(errorClass) {
			// Client errors and unclassified errors return immediately
			return lastErr
		}

		// In adaptive mode the first classified failure picks the
		// backoff profile for its class.
		if adaptive && attempt == 1 {
			config = RetryConfigForErrorClass(errorClass)
			backoff = config.InitialBackoff
		}

		// If this was the last attempt, don't wait
		if attempt >= config.MaxAttempts {
			break
		}

		retriesTotal.WithLabelValues(string(errorClass)).Inc()

		// Add jitter (±20% randomness)
		jitter := time.Duration(float64(backoff) * (0.8 + rand.Float64()*0.4))
		retryBackoffSeconds.WithLabelValues(string(errorClass)).Observe(jitter.Seconds())

		log.Debug().
			Str("error_class", string(errorClass)).
			Int("attempt", attempt).
			Dur("backoff", jitter).
			Msg("Retrying load after backoff")

		select {
		case <-ctx.Done():
			log.Warn().
				Str("error_class", string(errorClass)).
				Int("attempt", attempt).
				Msg("Context cancelled during retry backoff")
			return fmt.Errorf("%w: %v", ErrContextCancelled, ctx.Err())
		case <-time.After(jitter):
			// Continue to next attempt
		}

		backoff = time.Duration(float64(backoff) * config.BackoffMultiplier)
		if backoff > config.MaxBackoff {
			backoff = config.MaxBackoff
		}
	}

	// All retries exhausted
	errorClass := classify(lastErr)
	retryExhaustedTotal.WithLabelValues(string(errorClass)).Inc()
	log.Warn().
		Str("error_class", string(errorClass)).
		Int("max_attempts", config.MaxAttempts).
		Msg("Retry attempts exhausted")

	return fmt.Errorf("%w after %d attempts: %v", ErrRetryExhausted, config.MaxAttempts, lastErr)
}
