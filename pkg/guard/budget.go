// Package guard implements a Redis-shared failure budget for loaders.
// Every loader failure spends budget; when the budget runs out, further
// loads are blocked until the window resets. The state lives in Redis so
// all processes sharing an origin back off together.
package guard

import (
	"time"
)

// Redis keys for failure budget state storage.
const (
	RedisKeyFailuresRemaining = "hydrate:guard:failures_remaining"
	RedisKeyResetTimestamp    = "hydrate:guard:reset_timestamp"
	RedisKeyLastUpdate        = "hydrate:guard:last_update"
)

// Thresholds for failure budget decisions.
const (
	// FailureThresholdCritical blocks all loads when failures remaining falls below this value.
	// This stops a failing origin from being hammered further.
	FailureThresholdCritical = 5

	// FailureThresholdWarning marks the budget as degrading when failures
	// remaining falls below this value. Loads still pass but the state is logged.
	FailureThresholdWarning = 20

	// FailureThresholdHealthy indicates normal operation.
	// When failures remaining is at or above this value, no restrictions apply.
	FailureThresholdHealthy = 50
)

// Defaults for a fresh budget window.
const (
	DefaultBudget = 100
	DefaultWindow = 60 * time.Second
)

// BudgetState represents the current failure budget state.
// This state is shared across all loader instances via Redis.
type BudgetState struct {
	// FailuresRemaining is the number of failures left before loads are blocked.
	FailuresRemaining int `json:"failures_remaining"`

	// ResetAt is the timestamp when the budget window resets to full.
	ResetAt time.Time `json:"reset_at"`

	// LastUpdate is the timestamp when this state was last updated.
	// Used to detect stale state.
	LastUpdate time.Time `json:"last_update"`

	// IsHealthy indicates whether the budget is in a healthy state.
	// True when FailuresRemaining >= FailureThresholdHealthy.
	IsHealthy bool `json:"is_healthy"`
}

// IsStale returns true if the state data is older than the given duration.
func (s *BudgetState) IsStale(maxAge time.Duration) bool {
	return time.Since(s.LastUpdate) > maxAge
}

// NeedsCriticalBlock returns true if loads should be blocked due to an exhausted budget.
func (s *BudgetState) NeedsCriticalBlock() bool {
	return s.FailuresRemaining < FailureThresholdCritical
}

// NeedsWarning returns true if the budget is degrading but loads still pass.
func (s *BudgetState) NeedsWarning() bool {
	return s.FailuresRemaining < FailureThresholdWarning && !s.NeedsCriticalBlock()
}

// TimeUntilReset returns the duration until the budget window resets.
// Returns 0 if the reset time has already passed.
func (s *BudgetState) TimeUntilReset() time.Duration {
	duration := time.Until(s.ResetAt)
	if duration < 0 {
		return 0
	}
	return duration
}

// Expired returns true if the budget window has passed and the budget
// should be restored to full.
func (s *BudgetState) Expired() bool {
	return !s.ResetAt.IsZero() && time.Now().After(s.ResetAt)
}

// UpdateHealth updates the IsHealthy field based on current FailuresRemaining.
func (s *BudgetState) UpdateHealth() {
	s.IsHealthy = s.FailuresRemaining >= FailureThresholdHealthy
}
