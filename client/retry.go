package client

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = time.Second
)

// RetryOption tunes a single Retry call.
type RetryOption func(*retryConfig)

type retryConfig struct {
	maxAttempts int
	baseDelay   time.Duration
}

// WithMaxAttempts sets the number of retries after the initial attempt,
// so n+1 invocations happen in the worst case. Default 3.
func WithMaxAttempts(n int) RetryOption {
	return func(rc *retryConfig) {
		if n >= 0 {
			rc.maxAttempts = n
		}
	}
}

// WithBaseDelay sets the delay before the first retry; each subsequent
// retry doubles it. Default 1s.
func WithBaseDelay(d time.Duration) RetryOption {
	return func(rc *retryConfig) {
		if d > 0 {
			rc.baseDelay = d
		}
	}
}

// Retry invokes op, retrying on any error with exponential delays
// (baseDelay, 2*baseDelay, 4*baseDelay, ...; no jitter) until it succeeds
// or the attempt budget is spent, then returns the last observed error
// unchanged. Retries are strictly sequential; ctx cancellation stops the
// loop between attempts.
func Retry[T any](ctx context.Context, op func() (T, error), opts ...RetryOption) (T, error) {
	rc := retryConfig{maxAttempts: defaultMaxAttempts, baseDelay: defaultBaseDelay}
	for _, opt := range opts {
		opt(&rc)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = rc.baseDelay
	policy.Multiplier = 2
	policy.RandomizationFactor = 0
	policy.MaxElapsedTime = 0

	return backoff.RetryWithData(
		backoff.OperationWithData[T](op),
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(rc.maxAttempts)), ctx),
	)
}
