// Package worker runs batches of roe-cli jobs, one at a time.
//
// A batch is started with Start. The worker turns every input path into a
// Job, sends them through a channel.Channel sequentially and stops at the
// first failed Response. Exactly one Outcome is delivered per batch.
//
// Only one batch runs at a time. Start returns (nil, false) while a batch is
// in flight, which makes it safe to call from code that may run repeatedly
// during a batch, such as a render loop.
package worker

import (
	"context"
	"sync"
	"time"

	"roe-gui/internal/channel"
	"roe-gui/internal/errors"
	"roe-gui/internal/log"

	"github.com/google/uuid"
)

// OutcomeKind tags the terminal event of a batch.
type OutcomeKind int

const (
	// OutcomeSuccess means every job succeeded; Response is the last one received.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeFailure means a job failed; Response is the failing one.
	OutcomeFailure
	// OutcomeEmpty means the batch had no inputs; Response is nil.
	OutcomeEmpty
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Outcome is the single terminal event of a batch.
type Outcome struct {
	Kind     OutcomeKind
	Response *channel.Response
	// Job is the job that produced Response. Zero for OutcomeEmpty.
	Job     Job
	BatchID uuid.UUID
	// Dispatched counts the jobs sent, including a failed one.
	Dispatched int
	Total      int
	Elapsed    time.Duration
}

// Err returns the failure as a typed error, ErrEmptyBatch for an empty
// batch, or nil on success.
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeSuccess:
		return nil
	case OutcomeEmpty:
		return errors.ErrEmptyBatch
	}
	if o.Response == nil {
		return errors.NewProcessError("", "", "")
	}
	return o.Response.Err()
}

// Observer receives per-job progress. Methods are called from the batch
// goroutine and must not block.
type Observer interface {
	JobDispatched(batch uuid.UUID, index, total int, job Job)
	JobFinished(batch uuid.UUID, index, total int, job Job, resp channel.Response)
}

// Worker owns the queue of the running batch.
type Worker struct {
	ch channel.Channel

	mu       sync.Mutex
	running  bool
	observer Observer
}

// New creates a Worker that dispatches through ch.
func New(ch channel.Channel) *Worker {
	return &Worker{ch: ch}
}

// SetObserver installs o for subsequent batches. Pass nil to remove it.
func (w *Worker) SetObserver(o Observer) {
	w.mu.Lock()
	w.observer = o
	w.mu.Unlock()
}

// Running reports whether a batch is in flight.
func (w *Worker) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Start begins a batch for p and returns a channel that yields its Outcome
// once and is then closed. If a batch is already running nothing happens and
// Start returns (nil, false).
//
// The worker is idle again before the Outcome is delivered, so the receiver
// may start the next batch straight away.
func (w *Worker) Start(ctx context.Context, p Params) (<-chan Outcome, bool) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		log.Debug("batch start ignored, already running")
		return nil, false
	}

	q := BuildQueue(p)
	id := uuid.New()
	done := make(chan Outcome, 1)

	if q.Len() == 0 {
		w.mu.Unlock()
		log.Warn("batch has no inputs", log.String("batch", id.String()))
		done <- Outcome{Kind: OutcomeEmpty, BatchID: id}
		close(done)
		return done, true
	}

	w.running = true
	obs := w.observer
	w.mu.Unlock()

	log.Info("batch started",
		log.String("batch", id.String()),
		log.String("action", string(p.Action)),
		log.Int("jobs", q.Len()),
		log.Bool("recursive", p.Recursive),
	)

	go w.run(ctx, id, q, obs, done)
	return done, true
}

func (w *Worker) run(ctx context.Context, id uuid.UUID, q *Queue, obs Observer, done chan<- Outcome) {
	start := time.Now()
	out := Outcome{BatchID: id, Total: q.Len()}

	for {
		job, ok := q.Pop()
		if !ok {
			break
		}
		index := out.Dispatched
		out.Dispatched++

		if obs != nil {
			obs.JobDispatched(id, index, out.Total, job)
		}
		log.Debug("job dispatched",
			log.String("batch", id.String()),
			log.Int("index", index),
			log.String("input", job.Input()),
		)

		resp := w.ch.Send(ctx, job.Args())

		if obs != nil {
			obs.JobFinished(id, index, out.Total, job, resp)
		}

		out.Job = job
		out.Response = &resp
		if resp.Failed() {
			out.Kind = OutcomeFailure
			log.Warn("job failed",
				log.String("batch", id.String()),
				log.String("input", job.Input()),
				log.Err(resp.Err()),
			)
			break
		}
		out.Kind = OutcomeSuccess
	}

	out.Elapsed = time.Since(start)

	w.mu.Lock()
	w.running = false
	w.mu.Unlock()

	log.Info("batch finished",
		log.String("batch", id.String()),
		log.String("outcome", out.Kind.String()),
		log.Int("dispatched", out.Dispatched),
		log.Int("total", out.Total),
		log.Duration("elapsed", out.Elapsed),
	)

	done <- out
	close(done)
}
