package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds a single test when no explicit timeout is given.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled at test cleanup or after timeout,
// whichever comes first. The timeout is shortened to respect -timeout.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dt, hasDeadline := t.(interface{ Deadline() (time.Time, bool) }); hasDeadline {
		if deadline, ok := dt.Deadline(); ok {
			if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// RunWithTimeout fails the test if fn does not return before timeout.
func RunWithTimeout(t *testing.T, timeout time.Duration, fn func()) {
	t.Helper()
	ctx := Context(t, timeout)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatalf("test timed out")
	}
}
