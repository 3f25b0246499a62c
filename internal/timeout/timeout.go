// Package timeout races a single ledger call against a deadline.
package timeout

import (
	"context"
	"time"

	"github.com/ExpertVagabond/solana-mcp-server/internal/model"
)

// Run executes fn and races it against d. If the timer fires first the call
// fails with a NetworkTimeout fault and the underlying operation is
// abandoned: this is a client-side giving-up, not a transport cancellation,
// so the network call may still complete (and have side effects) after the
// caller has already received the timeout.
func Run[T any](ctx context.Context, d time.Duration, op string, fn func(context.Context) (T, error)) (T, error) {
	type outcome struct {
		value T
		err   error
	}

	done := make(chan outcome, 1)
	go func() {
		v, err := fn(ctx)
		done <- outcome{value: v, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case out := <-done:
		return out.value, out.err
	case <-timer.C:
		var zero T
		return zero, model.NetworkTimeout(op, d)
	}
}
