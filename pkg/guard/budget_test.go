package guard

import (
	"testing"
	"time"
)

func TestBudgetState_NeedsCriticalBlock(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		want      bool
	}{
		{"well above critical", 100, false},
		{"at critical threshold", FailureThresholdCritical, false},
		{"below critical threshold", FailureThresholdCritical - 1, true},
		{"zero budget", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &BudgetState{FailuresRemaining: tt.remaining}
			if got := s.NeedsCriticalBlock(); got != tt.want {
				t.Errorf("NeedsCriticalBlock() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBudgetState_NeedsWarning(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		want      bool
	}{
		{"healthy", 100, false},
		{"in warning band", FailureThresholdWarning - 1, true},
		{"critical is not warning", FailureThresholdCritical - 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &BudgetState{FailuresRemaining: tt.remaining}
			if got := s.NeedsWarning(); got != tt.want {
				t.Errorf("NeedsWarning() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBudgetState_UpdateHealth(t *testing.T) {
	s := &BudgetState{FailuresRemaining: FailureThresholdHealthy}
	s.UpdateHealth()
	if !s.IsHealthy {
		t.Error("IsHealthy = false at healthy threshold, want true")
	}

	s.FailuresRemaining = FailureThresholdHealthy - 1
	s.UpdateHealth()
	if s.IsHealthy {
		t.Error("IsHealthy = true below healthy threshold, want false")
	}
}

func TestBudgetState_TimeUntilReset(t *testing.T) {
	future := &BudgetState{ResetAt: time.Now().Add(30 * time.Second)}
	if d := future.TimeUntilReset(); d <= 0 || d > 30*time.Second {
		t.Errorf("TimeUntilReset() = %v, want in (0, 30s]", d)
	}

	past := &BudgetState{ResetAt: time.Now().Add(-time.Second)}
	if d := past.TimeUntilReset(); d != 0 {
		t.Errorf("TimeUntilReset() = %v, want 0 for past reset", d)
	}
}

func TestBudgetState_Expired(t *testing.T) {
	tests := []struct {
		name    string
		resetAt time.Time
		want    bool
	}{
		{"future reset", time.Now().Add(time.Minute), false},
		{"past reset", time.Now().Add(-time.Minute), true},
		{"zero reset", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &BudgetState{ResetAt: tt.resetAt}
			if got := s.Expired(); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBudgetState_IsStale(t *testing.T) {
	fresh := &BudgetState{LastUpdate: time.Now()}
	if fresh.IsStale(time.Minute) {
		t.Error("fresh state reported stale")
	}

	old := &BudgetState{LastUpdate: time.Now().Add(-2 * time.Minute)}
	if !old.IsStale(time.Minute) {
		t.Error("old state not reported stale")
	}
}
