package usecase

import (
	"errors"
	"time"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/storage"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrUpstreamUnavailable   = errors.New("upstream unavailable")
	ErrUpstreamRateLimited   = errors.New("upstream rate limited")
	ErrPreconditionFailed    = errors.New("precondition failed")

	// ErrDuplicateKey is the repository unique-violation sentinel. Sync
	// routines absorb it; it only reaches callers through a bug.
	ErrDuplicateKey = storage.ErrDuplicateKey
)

// IsTransient reports whether err is worth retrying later.
func IsTransient(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable) || errors.Is(err, ErrUpstreamRateLimited)
}

type retryAfterError struct {
	err   error
	after time.Duration
}

func (e *retryAfterError) Error() string { return e.err.Error() }
func (e *retryAfterError) Unwrap() error { return e.err }

// WithRetryAfter attaches the upstream back-off hint to err.
func WithRetryAfter(err error, after time.Duration) error {
	if err == nil || after <= 0 {
		return err
	}
	return &retryAfterError{err: err, after: after}
}

// RetryAfter returns the back-off hint carried by err, if any.
func RetryAfter(err error) (time.Duration, bool) {
	var target *retryAfterError
	if errors.As(err, &target) {
		return target.after, true
	}
	return 0, false
}
