package resilience

import (
	"errors"
	"sync"
	"testing"
	"time"
)

var (
	errUpstreamDown = errors.New("upstream down")
	errNotFound     = errors.New("not found")
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker("riot", CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      50 * time.Millisecond,
		HalfOpenMaxReq:   1,
	})

	fail := func() error { return errUpstreamDown }
	ok := func() error { return nil }

	if err := b.Execute(fail); !errors.Is(err, errUpstreamDown) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	_ = b.Execute(fail)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Execute(ok); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	time.Sleep(80 * time.Millisecond)
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}
	if err := b.Execute(ok); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_FailurePredicateIgnoresClientErrors(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker("riot", CircuitBreakerConfig{Enabled: true, FailureThreshold: 1},
		WithFailurePredicate(func(err error) bool { return !errors.Is(err, errNotFound) }),
	)

	for i := 0; i < 5; i++ {
		if err := b.Execute(func() error { return errNotFound }); !errors.Is(err, errNotFound) {
			t.Fatalf("expected not found passthrough, got %v", err)
		}
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed when only non-failures occur, got %s", state)
	}
}

func TestCircuitBreaker_DisabledNeverOpens(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker("riot", CircuitBreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 3; i++ {
		if err := b.Execute(func() error { return errUpstreamDown }); !errors.Is(err, errUpstreamDown) {
			t.Fatalf("expected raw error from disabled breaker, got %v", err)
		}
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed, got %s", state)
	}
}

func TestCircuitBreaker_ReportsStateChanges(t *testing.T) {
	t.Parallel()

	var (
		mu          sync.Mutex
		transitions []CircuitState
	)
	b := NewCircuitBreaker("riot", CircuitBreakerConfig{Enabled: true, FailureThreshold: 1},
		WithStateChange(func(_ string, _, to CircuitState) {
			mu.Lock()
			transitions = append(transitions, to)
			mu.Unlock()
		}),
	)

	_ = b.Execute(func() error { return errUpstreamDown })

	mu.Lock()
	defer mu.Unlock()
	if len(transitions) != 1 || transitions[0] != CircuitStateOpen {
		t.Fatalf("unexpected transitions: %v", transitions)
	}
}

func TestNormalizeCircuitBreakerConfig_FillsDefaults(t *testing.T) {
	t.Parallel()

	cfg := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold != defaults.FailureThreshold || cfg.OpenTimeout != defaults.OpenTimeout || cfg.HalfOpenMaxReq != defaults.HalfOpenMaxReq {
		t.Fatalf("unexpected normalized config: %+v", cfg)
	}
}
