package nodeclient

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rahilmansuri1/iris-wallet-desktop-sub004/pkg/log"
)

// JobState is the lifecycle state of a dispatched job. Terminal states
// are absorbing.
type JobState string

const (
	JobStatePending   JobState = "pending"
	JobStateRunning   JobState = "running"
	JobStateSucceeded JobState = "succeeded"
	JobStateFailed    JobState = "failed"
	JobStateCancelled JobState = "cancelled"
)

func (s JobState) terminal() bool {
	switch s {
	case JobStateSucceeded, JobStateFailed, JobStateCancelled:
		return true
	}
	return false
}

// Job is a handle over one dispatched target. The view model keeps it
// to observe state or abandon the result.
type Job struct {
	ID uuid.UUID

	mu    sync.Mutex
	state JobState
}

// State returns the current job state.
func (j *Job) State() JobState {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

// Cancel abandons the job. The underlying call is not aborted; its
// result is dropped when it arrives. Cancelling a terminal job is a
// no-op.
func (j *Job) Cancel() {
	j.transition(JobStateCancelled)
}

// transition moves the job to the given state and reports whether the
// move happened. Terminal states never change.
func (j *Job) transition(to JobState) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.state.terminal() {
		return false
	}
	j.state = to
	return true
}

// dispatchedJob pairs a job handle with its work and callbacks.
type dispatchedJob struct {
	job    *Job
	target func(ctx context.Context) (any, error)
	cb     func(any)
	errCb  func(error)
}

// Dispatcher runs repository and service calls off the UI thread. A
// fixed worker pool executes targets; results are marshalled to a
// single delivery goroutine so callbacks fire serially, standing in for
// the UI framework's signal mechanism. Exactly one of the two callbacks
// fires per job unless the job was cancelled first.
type Dispatcher struct {
	jobs       chan *dispatchedJob
	deliveries chan func()
	wg         sync.WaitGroup
	deliverWg  sync.WaitGroup
	cancel     context.CancelFunc
	logger     log.Logger
	metrics    *Metrics
}

// DefaultWorkerCount is the worker pool size used when none is given.
const DefaultWorkerCount = 4

// NewDispatcher starts a dispatcher with the given number of workers.
func NewDispatcher(workers int, logger log.Logger, metrics *Metrics) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkerCount
	}
	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		jobs:       make(chan *dispatchedJob, workers*4),
		deliveries: make(chan func(), workers*4),
		cancel:     cancel,
		logger:     logger.NewSystem("dispatcher"),
		metrics:    metrics,
	}

	d.deliverWg.Add(1)
	go d.deliverLoop()

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.workerLoop(ctx)
	}
	return d
}

// Dispatch schedules target on the worker pool. Either cb or errCb is
// invoked with the outcome, serially with all other callbacks, unless
// the returned job is cancelled first. Nil callbacks are allowed.
func (d *Dispatcher) Dispatch(target func(ctx context.Context) (any, error), cb func(any), errCb func(error)) *Job {
	job := &Job{ID: uuid.New(), state: JobStatePending}
	if d.metrics != nil {
		d.metrics.JobsActive.Inc()
	}
	d.jobs <- &dispatchedJob{job: job, target: target, cb: cb, errCb: errCb}
	return job
}

// Stop shuts the dispatcher down: running targets are interrupted via
// context, queued jobs are dropped, and the delivery loop drains.
func (d *Dispatcher) Stop() {
	d.cancel()
	close(d.jobs)
	d.wg.Wait()
	close(d.deliveries)
	d.deliverWg.Wait()
}

func (d *Dispatcher) workerLoop(ctx context.Context) {
	defer d.wg.Done()
	for dj := range d.jobs {
		if ctx.Err() != nil {
			// Shutdown began before the job ran.
			dj.job.transition(JobStateCancelled)
			d.finish(dj.job, JobStateCancelled)
			continue
		}
		d.execute(ctx, dj)
	}
}

func (d *Dispatcher) execute(ctx context.Context, dj *dispatchedJob) {
	if !dj.job.transition(JobStateRunning) {
		// Cancelled while queued.
		d.finish(dj.job, JobStateCancelled)
		return
	}

	result, err := dj.target(ctx)

	d.deliveries <- func() {
		if err != nil {
			if !dj.job.transition(JobStateFailed) {
				d.finish(dj.job, JobStateCancelled)
				return
			}
			d.finish(dj.job, JobStateFailed)
			if dj.errCb != nil {
				dj.errCb(err)
			}
			return
		}
		if !dj.job.transition(JobStateSucceeded) {
			d.finish(dj.job, JobStateCancelled)
			return
		}
		d.finish(dj.job, JobStateSucceeded)
		if dj.cb != nil {
			dj.cb(result)
		}
	}
}

// deliverLoop invokes callbacks one at a time, in arrival order.
func (d *Dispatcher) deliverLoop() {
	defer d.deliverWg.Done()
	for deliver := range d.deliveries {
		deliver()
	}
}

func (d *Dispatcher) finish(job *Job, state JobState) {
	if d.metrics == nil {
		return
	}
	d.metrics.JobsActive.Dec()
	d.metrics.JobsTotal.WithLabelValues(string(state)).Inc()
}
