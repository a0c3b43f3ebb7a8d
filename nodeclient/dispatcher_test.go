package nodeclient

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahilmansuri1/iris-wallet-desktop-sub004/pkg/log"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	d := NewDispatcher(2, log.NewLogger("test"), nil)
	t.Cleanup(d.Stop)
	return d
}

func TestDispatcher(t *testing.T) {
	t.Run("success invokes exactly the result callback", func(t *testing.T) {
		d := newTestDispatcher(t)
		done := make(chan any, 1)
		var errCalls atomic.Int32

		job := d.Dispatch(
			func(context.Context) (any, error) { return "result", nil },
			func(v any) { done <- v },
			func(error) { errCalls.Add(1) },
		)

		select {
		case v := <-done:
			require.Equal(t, "result", v)
		case <-time.After(time.Second):
			t.Fatal("callback not delivered")
		}
		assert.Zero(t, errCalls.Load())
		assert.Eventually(t, func() bool { return job.State() == JobStateSucceeded },
			time.Second, 5*time.Millisecond)
	})

	t.Run("failure invokes exactly the error callback", func(t *testing.T) {
		d := newTestDispatcher(t)
		boom := errors.New("boom")
		done := make(chan error, 1)
		var okCalls atomic.Int32

		job := d.Dispatch(
			func(context.Context) (any, error) { return nil, boom },
			func(any) { okCalls.Add(1) },
			func(err error) { done <- err },
		)

		select {
		case err := <-done:
			require.ErrorIs(t, err, boom)
		case <-time.After(time.Second):
			t.Fatal("error callback not delivered")
		}
		assert.Zero(t, okCalls.Load())
		assert.Eventually(t, func() bool { return job.State() == JobStateFailed },
			time.Second, 5*time.Millisecond)
	})

	t.Run("cancellation drops a late result", func(t *testing.T) {
		d := newTestDispatcher(t)
		release := make(chan struct{})
		started := make(chan struct{})
		var callbacks atomic.Int32

		job := d.Dispatch(
			func(context.Context) (any, error) {
				close(started)
				<-release
				return "late", nil
			},
			func(any) { callbacks.Add(1) },
			func(error) { callbacks.Add(1) },
		)

		<-started
		job.Cancel()
		close(release)

		assert.Eventually(t, func() bool { return job.State() == JobStateCancelled },
			time.Second, 5*time.Millisecond)
		// Give the delivery loop a chance to misbehave.
		time.Sleep(50 * time.Millisecond)
		assert.Zero(t, callbacks.Load())
	})

	t.Run("cancelling a finished job keeps its terminal state", func(t *testing.T) {
		d := newTestDispatcher(t)
		done := make(chan struct{})
		job := d.Dispatch(
			func(context.Context) (any, error) { return nil, nil },
			func(any) { close(done) },
			nil,
		)
		<-done
		assert.Eventually(t, func() bool { return job.State() == JobStateSucceeded },
			time.Second, 5*time.Millisecond)

		job.Cancel()
		assert.Equal(t, JobStateSucceeded, job.State())
	})

	t.Run("callbacks are delivered serially", func(t *testing.T) {
		d := newTestDispatcher(t)
		var mu sync.Mutex
		inFlight := 0
		var overlapped atomic.Bool
		var wg sync.WaitGroup

		for i := 0; i < 20; i++ {
			wg.Add(1)
			d.Dispatch(
				func(context.Context) (any, error) { return nil, nil },
				func(any) {
					mu.Lock()
					inFlight++
					if inFlight > 1 {
						overlapped.Store(true)
					}
					mu.Unlock()
					time.Sleep(time.Millisecond)
					mu.Lock()
					inFlight--
					mu.Unlock()
					wg.Done()
				},
				nil,
			)
		}
		wg.Wait()
		assert.False(t, overlapped.Load())
	})

	t.Run("stop drops queued jobs without running them", func(t *testing.T) {
		d := NewDispatcher(1, log.NewLogger("test"), nil)

		started := make(chan struct{})
		blocker := d.Dispatch(
			func(ctx context.Context) (any, error) {
				close(started)
				<-ctx.Done()
				return nil, ctx.Err()
			},
			nil, nil,
		)
		<-started

		var ran atomic.Int32
		queued := make([]*Job, 0, 3)
		for i := 0; i < 3; i++ {
			queued = append(queued, d.Dispatch(
				func(context.Context) (any, error) {
					ran.Add(1)
					return nil, nil
				},
				func(any) { ran.Add(1) },
				func(error) { ran.Add(1) },
			))
		}

		d.Stop()

		assert.Zero(t, ran.Load())
		for _, job := range queued {
			assert.Equal(t, JobStateCancelled, job.State())
		}
		assert.Equal(t, JobStateFailed, blocker.State())
	})

	t.Run("jobs have distinct ids", func(t *testing.T) {
		d := newTestDispatcher(t)
		a := d.Dispatch(func(context.Context) (any, error) { return nil, nil }, nil, nil)
		b := d.Dispatch(func(context.Context) (any, error) { return nil, nil }, nil, nil)
		assert.NotEqual(t, a.ID, b.ID)
	})
}
