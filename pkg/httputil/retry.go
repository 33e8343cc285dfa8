package httputil

import (
	"context"
	"errors"
	"time"
)

// Defaults used by [RetryWithBackoff], tuned for the GitHub raw-content
// endpoints the dataset fetcher talks to.
const (
	defaultAttempts = 3
	defaultDelay    = time.Second
)

// RetryableError marks a failure as transient. The dataset fetcher wraps
// timeouts, connection resets, and 5xx responses with it; anything else,
// such as a 404 for a dataset that moved, fails the fetch immediately.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

// Retry runs fn until it succeeds, fails permanently, or attempts run
// out, doubling delay between tries. Only [RetryableError] failures are
// retried. Returns the last attempt's error, or ctx.Err() when the
// context ends while waiting to retry.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := 0; i < attempts; i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !isRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

// RetryWithBackoff is [Retry] with the package defaults.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, defaultAttempts, defaultDelay, fn)
}
