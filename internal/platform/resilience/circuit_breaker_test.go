package resilience

import (
	"errors"
	"testing"
	"time"
)

func newTestBreaker(now *time.Time) *CircuitBreaker {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   1,
	})
	b.now = func() time.Time { return *now }
	return b
}

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}
	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}
	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second probe to be rejected, got %v", err)
	}
	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_ExecuteIgnoresClientErrors(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)
	notFound := errors.New("not found")

	for i := 0; i < 5; i++ {
		err := b.Execute(func() error { return notFound }, func(err error) bool { return errors.Is(err, notFound) })
		if !errors.Is(err, notFound) {
			t.Fatalf("expected passthrough error, got %v", err)
		}
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("ignored errors must not trip the breaker, got %s", state)
	}

	boom := errors.New("boom")
	_ = b.Execute(func() error { return boom }, nil)
	_ = b.Execute(func() error { return boom }, nil)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after counted failures, got %s", state)
	}
}

func TestCircuitBreaker_NilAllowsEverything(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: false})
	if b != nil {
		t.Fatalf("expected nil breaker when disabled")
	}
	if err := b.Execute(func() error { return nil }, nil); err != nil {
		t.Fatalf("nil breaker should allow: %v", err)
	}
	if b.State() != CircuitStateClosed {
		t.Fatalf("nil breaker reports closed")
	}
}

func TestCircuitBreakerConfig_Defaults(t *testing.T) {
	if got, want := (CircuitBreakerConfig{Enabled: true}).withDefaults(), DefaultCircuitBreakerConfig(); got != want {
		t.Fatalf("expected defaults %+v, got %+v", want, got)
	}
}

func TestCircuitBreakerConfig_Validate(t *testing.T) {
	if err := DefaultCircuitBreakerConfig().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	bad := []CircuitBreakerConfig{
		{FailureThreshold: 0, OpenTimeout: time.Second, HalfOpenMaxReq: 1},
		{FailureThreshold: 1, OpenTimeout: 0, HalfOpenMaxReq: 1},
		{FailureThreshold: 1, OpenTimeout: time.Second, HalfOpenMaxReq: 0},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected %+v to be rejected", cfg)
		}
	}
}
