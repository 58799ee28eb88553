package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable marks a transient backend failure (connection drop, failover,
// timeout). Callers treat it as a miss after retries are exhausted.
var ErrUnavailable = errors.New("cache backend unavailable")

// RetryableError marks an error as worth retrying. The remote backends wrap
// transient failures with it; everything else fails immediately.
type RetryableError struct{ Err error }

// Retryable wraps an error as a RetryableError. A nil error stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is wrapped with RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// retryAttempts and retryBaseDelay tune RetryWithBackoff. The delays stay
// short because retries run inline on the request path.
const (
	retryAttempts  = 3
	retryBaseDelay = 50 * time.Millisecond
)

// RetryWithBackoff runs fn up to retryAttempts times with doubling delays.
// Only errors wrapped with Retryable trigger another attempt; context
// cancellation wins over the remaining attempts.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := retryBaseDelay
	var lastErr error

	for i := 0; i < retryAttempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		lastErr = err

		if i < retryAttempts-1 {
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
