package queue

import (
	"context"
	"slices"
	"sync"
	"time"

	"task-triage/internal/model"
	"task-triage/pkg/log"
)

// ProcessFunc handles one batch. It runs to completion before the next batch
// is taken, and its outcome does not affect the queue.
type ProcessFunc func(ctx context.Context, batch []model.Task)

// Options tunes a Queue. Zero values pick defaults.
type Options struct {
	QuietPeriod time.Duration
	RetryDelay  time.Duration
	BatchSize   int
	Scheduler   Scheduler
}

// Queue accumulates tasks and hands them to a ProcessFunc in bounded FIFO
// batches once input has been quiet for QuietPeriod. At most one batch is
// in flight at a time; leftovers are retried after RetryDelay.
type Queue struct {
	process ProcessFunc
	l       log.Logger
	opts    Options

	mu       sync.Mutex
	pending  []model.Task
	ids      map[string]struct{}
	state    state
	closed   bool
	debounce Timer
	retry    Timer
	idle     chan struct{} // closed when the queue next becomes empty and idle
	inflight sync.WaitGroup
}

// New creates an idle Queue.
func New(process ProcessFunc, l log.Logger, opts Options) *Queue {
	if opts.QuietPeriod <= 0 {
		opts.QuietPeriod = DefaultQuietPeriod
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Scheduler == nil {
		opts.Scheduler = SystemScheduler
	}
	return &Queue{
		process: process,
		l:       l,
		opts:    opts,
		ids:     make(map[string]struct{}),
	}
}

// Enqueue appends tasks whose IDs are not already pending and restarts the
// quiet-period countdown.
func (q *Queue) Enqueue(tasks []model.Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}

	for _, t := range tasks {
		if _, ok := q.ids[t.ID]; ok {
			continue
		}
		q.ids[t.ID] = struct{}{}
		q.pending = append(q.pending, t)
	}

	if q.debounce != nil {
		q.debounce.Stop()
	}
	q.debounce = q.opts.Scheduler.AfterFunc(q.opts.QuietPeriod, q.fire)
	return nil
}

// Pending returns the number of tasks waiting for a batch.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Processing reports whether a batch is in flight.
func (q *Queue) Processing() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state == stateProcessing
}

// Drain blocks until nothing is pending or in flight, or ctx is done.
func (q *Queue) Drain(ctx context.Context) error {
	q.mu.Lock()
	if q.state == stateIdle && len(q.pending) == 0 {
		q.mu.Unlock()
		return nil
	}
	if q.idle == nil {
		q.idle = make(chan struct{})
	}
	idle := q.idle
	q.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting tasks, cancels scheduled batches and waits for the
// in-flight batch, if any, or for ctx to be done.
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	q.closed = true
	if q.debounce != nil {
		q.debounce.Stop()
	}
	if q.retry != nil {
		q.retry.Stop()
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// fire takes the next batch, runs it, and schedules a follow-up if tasks remain.
func (q *Queue) fire() {
	q.mu.Lock()
	if q.closed || q.state == stateProcessing || len(q.pending) == 0 {
		q.mu.Unlock()
		return
	}

	n := min(q.opts.BatchSize, len(q.pending))
	batch := slices.Clone(q.pending[:n])
	q.pending = slices.Clone(q.pending[n:])
	for _, t := range batch {
		delete(q.ids, t.ID)
	}
	q.state = stateProcessing
	q.inflight.Add(1)
	q.mu.Unlock()

	defer q.finish()
	q.run(batch)
}

func (q *Queue) run(batch []model.Task) {
	ctx := context.Background()
	defer func() {
		if r := recover(); r != nil {
			q.l.Errorf(ctx, "queue.run: batch of %d panicked: %v", len(batch), r)
		}
	}()

	q.l.Debugf(ctx, "queue.run: processing batch of %d", len(batch))
	q.process(ctx, batch)
}

func (q *Queue) finish() {
	q.mu.Lock()
	defer q.mu.Unlock()
	defer q.inflight.Done()

	q.state = stateIdle
	if len(q.pending) > 0 {
		if !q.closed {
			q.retry = q.opts.Scheduler.AfterFunc(q.opts.RetryDelay, q.fire)
		}
		return
	}
	if q.idle != nil {
		close(q.idle)
		q.idle = nil
	}
}
