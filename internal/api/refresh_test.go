package api

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRefreshGate_SharesSingleExecution(t *testing.T) {
	gate := &refreshGate{}

	var executions int32
	release := make(chan struct{})

	started := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		gate.run(context.Background(), func(context.Context) error {
			atomic.AddInt32(&executions, 1)
			close(started)
			<-release
			return nil
		})
	}()

	<-started

	// These callers arrive while the refresh is in flight; they must wait
	// for it rather than execute their own.
	results := make([]error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = gate.run(context.Background(), func(context.Context) error {
				atomic.AddInt32(&executions, 1)
				return nil
			})
		}(i)
	}

	// Give the waiters time to enqueue before releasing the initiator.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.EqualValues(t, 1, atomic.LoadInt32(&executions))
	for i, err := range results {
		require.NoError(t, err, "waiter %d", i)
	}
}

func TestRefreshGate_PropagatesFailureToWaiters(t *testing.T) {
	gate := &refreshGate{}
	refreshErr := errors.New("refresh exploded")

	release := make(chan struct{})
	started := make(chan struct{})

	var initiatorErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		initiatorErr = gate.run(context.Background(), func(context.Context) error {
			close(started)
			<-release
			return refreshErr
		})
	}()

	<-started

	waiterErrs := make([]error, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			waiterErrs[i] = gate.run(context.Background(), func(context.Context) error {
				t.Error("waiter must not execute a second refresh")
				return nil
			})
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.ErrorIs(t, initiatorErr, refreshErr)
	for i, err := range waiterErrs {
		require.ErrorIs(t, err, refreshErr, "waiter %d", i)
	}
}

func TestRefreshGate_ResetsBetweenEpisodes(t *testing.T) {
	gate := &refreshGate{}

	var executions int32
	fn := func(context.Context) error {
		atomic.AddInt32(&executions, 1)
		return nil
	}

	require.NoError(t, gate.run(context.Background(), fn))
	require.NoError(t, gate.run(context.Background(), fn))

	require.EqualValues(t, 2, executions, "each settled episode permits a fresh refresh")
	require.Empty(t, gate.waiters, "queue is drained after every episode")
}

func TestRefreshGate_WaiterHonorsContext(t *testing.T) {
	gate := &refreshGate{}

	release := make(chan struct{})
	started := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		gate.run(context.Background(), func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := gate.run(ctx, func(context.Context) error { return nil })
	require.ErrorIs(t, err, context.Canceled)

	close(release)
	wg.Wait()
}
