package store

import (
	"context"
	"errors"
	"time"
)

// Connection retry settings for the network stores. A database that is
// still starting gets connectAttempts pings, connectDelay apart and doubling.
const (
	connectAttempts = 3
	connectDelay    = 500 * time.Millisecond
)

// transientError marks a failure worth retrying, such as a refused ping.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// transient wraps err so retry attempts the operation again.
func transient(err error) error { return &transientError{err} }

// retry runs fn up to attempts times with exponential backoff. Only errors
// wrapped with transient are retried; others are returned at once. The
// returned error is unwrapped from transient.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		err := fn()
		if err == nil {
			return nil
		}
		var t *transientError
		if !errors.As(err, &t) {
			return err
		}
		lastErr = t.err

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
