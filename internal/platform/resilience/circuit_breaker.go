package resilience

import (
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// BreakerOption customises a CircuitBreaker at construction time.
type BreakerOption func(*gobreaker.Settings)

// WithFailurePredicate decides which errors count against the breaker.
// Errors for which isFailure returns false are recorded as successes, so a
// 404 from a healthy upstream never trips the circuit.
func WithFailurePredicate(isFailure func(error) bool) BreakerOption {
	return func(s *gobreaker.Settings) {
		if isFailure == nil {
			return
		}
		s.IsSuccessful = func(err error) bool {
			return err == nil || !isFailure(err)
		}
	}
}

// WithStateChange registers a callback fired on every transition.
func WithStateChange(fn func(name string, from, to CircuitState)) BreakerOption {
	return func(s *gobreaker.Settings) {
		if fn == nil {
			return
		}
		s.OnStateChange = func(name string, from, to gobreaker.State) {
			fn(name, mapState(from), mapState(to))
		}
	}
}

// CircuitBreaker guards an upstream dependency. A disabled breaker runs
// every call straight through.
type CircuitBreaker struct {
	enabled bool
	cb      *gobreaker.CircuitBreaker[any]
}

func NewCircuitBreaker(name string, cfg CircuitBreakerConfig, opts ...BreakerOption) *CircuitBreaker {
	cfg = NormalizeCircuitBreakerConfig(cfg)
	threshold := uint32(cfg.FailureThreshold)

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: uint32(cfg.HalfOpenMaxReq),
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	}
	for _, opt := range opts {
		opt(&settings)
	}

	return &CircuitBreaker{
		enabled: cfg.Enabled,
		cb:      gobreaker.NewCircuitBreaker[any](settings),
	}
}

// Execute runs fn under the breaker. Rejections surface as ErrCircuitOpen.
func (b *CircuitBreaker) Execute(fn func() error) error {
	if b == nil || !b.enabled {
		return fn()
	}

	_, err := b.cb.Execute(func() (any, error) {
		return nil, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrCircuitOpen
	}
	return err
}

func (b *CircuitBreaker) State() CircuitState {
	if b == nil || !b.enabled {
		return CircuitStateClosed
	}
	return mapState(b.cb.State())
}

func mapState(state gobreaker.State) CircuitState {
	switch state {
	case gobreaker.StateOpen:
		return CircuitStateOpen
	case gobreaker.StateHalfOpen:
		return CircuitStateHalfOpen
	default:
		return CircuitStateClosed
	}
}
