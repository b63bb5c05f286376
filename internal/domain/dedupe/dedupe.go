// Package dedupe tracks seen check-in IDs so resubmitting the same entry is
// idempotent.
package dedupe

import (
	"context"
	"sync"
)

// Deduper records seen entry IDs to ensure at-most-once ingestion.
type Deduper interface {
	// SeenAndRecord atomically checks whether id was seen and records it if
	// not. Returns true if id was already seen.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord removes an ID from the seen set, allowing a retry. Used when
	// an entry was marked seen but failed to enqueue.
	Unrecord(ctx context.Context, id string)

	// Size returns the number of IDs currently tracked.
	Size() int64
}

// inMemoryDeduper implements Deduper with a map plus a FIFO ring of IDs
// for bounded eviction. maxSize <= 0 means unbounded.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	ring    []string
	head    int
	maxSize int
}

// NewInMemoryDeduper creates an in-memory deduper with configuration
// options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		maxSize: 50000,
	}

	for _, opt := range opts {
		opt(d)
	}

	d.seen = make(map[string]struct{})
	if d.maxSize > 0 {
		d.ring = make([]string, 0, d.maxSize)
	}

	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[id]; exists {
		return true
	}

	if d.maxSize > 0 {
		if len(d.ring) < d.maxSize {
			d.ring = append(d.ring, id)
		} else {
			// Ring is full: take over the oldest slot, evicting its ID
			// unless Unrecord already tombstoned it.
			victim := d.ring[d.head]
			d.ring[d.head] = id
			d.head = (d.head + 1) % d.maxSize
			if victim != "" {
				delete(d.seen, victim)
			}
		}
	}

	d.seen[id] = struct{}{}
	return false
}

func (d *inMemoryDeduper) Unrecord(_ context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[id]; !exists {
		return
	}
	delete(d.seen, id)

	// Leave a tombstone in the ring; eviction skips it later.
	for i := range d.ring {
		if d.ring[i] == id {
			d.ring[i] = ""
			break
		}
	}
}

func (d *inMemoryDeduper) Size() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int64(len(d.seen))
}
