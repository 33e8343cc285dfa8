package httputil

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetryStopsOnPermanentError(t *testing.T) {
	permanent := errors.New("no such dataset")
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Errorf("err = %v, want %v", err, permanent)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestRetryRecoversFromTransientError(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return &RetryableError{Err: errors.New("connection reset")}
		}
		return nil
	})
	if err != nil {
		t.Errorf("Retry: %v", err)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	transient := errors.New("status 503")
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return &RetryableError{Err: transient}
	})
	if !errors.Is(err, transient) {
		t.Errorf("err = %v, want last attempt's error", err)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
}

func TestRetryHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Retry(ctx, 3, time.Minute, func() error {
		return &RetryableError{Err: errors.New("timeout")}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRetryableErrorUnwraps(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")
	wrapped := &RetryableError{Err: cause}
	if !errors.Is(wrapped, cause) {
		t.Error("RetryableError should unwrap to its cause")
	}
	if wrapped.Error() != cause.Error() {
		t.Errorf("message = %q, want %q", wrapped.Error(), cause.Error())
	}
	if !isRetryable(wrapped) || isRetryable(cause) {
		t.Error("only wrapped errors should be retryable")
	}
}
