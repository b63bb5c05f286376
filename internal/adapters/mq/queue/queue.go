// Package queue defines the contract for buffering check-in submissions
// between the HTTP layer and the ingestion workers.
package queue

import (
	"context"
	"sync"

	"github.com/getinward/inward/internal/domain/model"
	"github.com/getinward/inward/pkg/metrics"
)

const defaultCapacity = 10000

// Entry is the payload type flowing through the queue.
type Entry = model.MoodEntry

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds an entry. Returns false when the queue is full or
	// closed; the entry was not accepted.
	Enqueue(ctx context.Context, e Entry) bool

	// Dequeue returns a channel delivering entries as they become
	// available. The channel closes when the queue closes.
	Dequeue(ctx context.Context) <-chan Entry

	// Len returns the current number of buffered entries.
	Len(ctx context.Context) int

	// Close stops the queue; no new entries are accepted afterwards.
	Close() error

	// IsClosed reports whether the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue with a buffered channel.
type InMemoryQueue struct {
	entries  chan Entry
	capacity int

	mu     sync.RWMutex
	closed bool
}

// NewInMemoryQueue creates an in-memory queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity: defaultCapacity,
	}

	for _, opt := range opts {
		opt(q)
	}

	q.entries = make(chan Entry, q.capacity)

	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0, q.capacity)

	return q
}

// Enqueue adds an entry without blocking.
func (q *InMemoryQueue) Enqueue(ctx context.Context, e Entry) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordQueueError("closed")
		return false
	}

	select {
	case q.entries <- e:
		metrics.RecordQueueEnqueue()
		metrics.UpdateQueueSize(len(q.entries), q.capacity)
		return true
	case <-ctx.Done():
		metrics.RecordQueueError("context_cancelled")
		return false
	default:
		metrics.RecordQueueError("queue_full")
		return false
	}
}

// Dequeue returns a channel delivering entries as they become available.
func (q *InMemoryQueue) Dequeue(ctx context.Context) <-chan Entry {
	out := make(chan Entry)
	go func() {
		defer close(out)
		for entry := range q.entries {
			select {
			case out <- entry:
				metrics.RecordQueueDequeue()
				metrics.UpdateQueueSize(len(q.entries), q.capacity)
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Len returns the current number of buffered entries.
func (q *InMemoryQueue) Len(_ context.Context) int {
	return len(q.entries)
}

// Close stops the queue.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	close(q.entries)
	q.closed = true

	return nil
}

// IsClosed reports whether the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
