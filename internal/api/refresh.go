package api

import (
	"context"
	"sync"
)

// refreshGate coordinates session refreshes across concurrent callers.
// At most one refresh call is in flight at any time; callers that hit an
// auth failure while a refresh is underway wait for its outcome instead of
// starting a second one. The waiter list is flushed exactly once per
// refresh attempt, on both the success and failure paths.
type refreshGate struct {
	mu         sync.Mutex
	refreshing bool
	waiters    []chan error
}

// run executes fn if no refresh is in flight, otherwise blocks until the
// in-flight refresh settles and adopts its outcome. Only the initiating
// caller runs fn.
func (g *refreshGate) run(ctx context.Context, fn func(context.Context) error) error {
	g.mu.Lock()
	if g.refreshing {
		ch := make(chan error, 1)
		g.waiters = append(g.waiters, ch)
		g.mu.Unlock()

		select {
		case err := <-ch:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	g.refreshing = true
	g.mu.Unlock()

	err := fn(ctx)

	g.mu.Lock()
	g.refreshing = false
	waiters := g.waiters
	g.waiters = nil
	g.mu.Unlock()

	// Buffered channels, so abandoned waiters cannot block the flush.
	for _, ch := range waiters {
		ch <- err
	}

	return err
}
