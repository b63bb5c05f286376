// Package worker runs the ingestion workers that drain the submission
// queue into the journal.
package worker

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/getinward/inward/internal/domain/model"
	"github.com/getinward/inward/pkg/logger"
	"github.com/getinward/inward/pkg/metrics"
)

const workerShutdownTimeout = 5 * time.Second

// Entry is what workers read off the queue.
type Entry = model.MoodEntry

// Persister stores a drained entry. Satisfied by the journal repository.
type Persister interface {
	Append(ctx context.Context, entry model.MoodEntry) error
}

// Queue defines how workers receive entries.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Entry
}

// Worker drains entries from the queue into the persister.
type Worker struct {
	queue     Queue
	persister Persister
	name      string

	done chan struct{}

	logger logger.Logger
}

// NewWorker creates a worker with configuration options.
func NewWorker(queue Queue, persister Persister, opts ...Option) *Worker {
	w := &Worker{
		queue:     queue,
		persister: persister,
		name:      "worker",
		done:      make(chan struct{}),
		logger:    logger.Get().Named("worker"),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run drains the queue until ctx is cancelled or the queue closes.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	entries := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-entries:
			if !ok {
				return
			}
			if err := w.process(ctx, entry); err != nil {
				w.logger.Error(ctx, "failed to persist entry",
					logger.String("entryID", entry.ID),
					logger.Error(err),
				)
			}
		}
	}
}

func (w *Worker) process(ctx context.Context, entry Entry) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))
	}()

	if err := w.persister.Append(ctx, entry); err != nil {
		metrics.RecordWorkerError()
		return fmt.Errorf("append entry %s: %w", entry.ID, err)
	}

	metrics.RecordEntryRecorded()
	w.logger.Debug(ctx, "entry recorded",
		logger.String("entryID", entry.ID),
		logger.String("bucket", string(entry.Bucket)),
	)
	return nil
}

// Pool manages a fixed set of workers.
type Pool struct {
	workers []*Worker

	logger logger.Logger
}

// NewPool creates workerCount workers over the same queue and persister.
func NewPool(workerCount int, queue Queue, persister Persister) *Pool {
	if workerCount < 1 {
		workerCount = 1
	}

	p := &Pool{
		workers: make([]*Worker, workerCount),
		logger:  logger.Get().Named("worker-pool"),
	}
	for i := range p.workers {
		p.workers[i] = NewWorker(queue, persister, WithName("worker-"+strconv.Itoa(i)))
	}

	metrics.UpdateWorkerCount(workerCount)

	return p
}

// Start launches all workers.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop waits for the workers to finish draining. The queue must already be
// closed, otherwise workers keep waiting for entries until the timeout.
func (p *Pool) Stop() {
	for _, w := range p.workers {
		select {
		case <-w.done:
		case <-time.After(workerShutdownTimeout):
			p.logger.Warn(context.Background(), "worker shutdown timed out",
				logger.String("worker", w.name),
			)
		}
	}
	metrics.UpdateWorkerCount(0)
}
