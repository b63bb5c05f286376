package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/getinward/inward/internal/domain/model"
	"github.com/getinward/inward/pkg/metrics"
)

const defaultInitialCapacity = 1024

// Option applies a configuration option to the MemoryJournal.
type Option func(*MemoryJournal)

// WithInitialCapacity pre-sizes the backing slice.
func WithInitialCapacity(n int) Option {
	return func(j *MemoryJournal) {
		if n > 0 {
			j.initialCapacity = n
		}
	}
}

// MemoryJournal implements Journal with a mutex-guarded, timestamp-ordered
// slice.
type MemoryJournal struct {
	mu              sync.RWMutex
	entries         []model.MoodEntry
	initialCapacity int
	closed          bool
}

// NewMemoryJournal creates an empty in-memory journal.
func NewMemoryJournal(opts ...Option) *MemoryJournal {
	j := &MemoryJournal{
		initialCapacity: defaultInitialCapacity,
	}

	for _, opt := range opts {
		opt(j)
	}

	j.entries = make([]model.MoodEntry, 0, j.initialCapacity)
	metrics.UpdateJournalSize(0)

	return j
}

// Append stores an entry at its timestamp position. Check-ins almost always
// arrive in order, so the common case is a plain append.
func (j *MemoryJournal) Append(_ context.Context, entry model.MoodEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return ErrClosed
	}

	n := len(j.entries)
	if n == 0 || !entry.Timestamp.Before(j.entries[n-1].Timestamp) {
		j.entries = append(j.entries, entry)
	} else {
		i := sort.Search(n, func(k int) bool {
			return j.entries[k].Timestamp.After(entry.Timestamp)
		})
		j.entries = append(j.entries, model.MoodEntry{})
		copy(j.entries[i+1:], j.entries[i:])
		j.entries[i] = entry
	}

	metrics.UpdateJournalSize(len(j.entries))
	return nil
}

// List returns a snapshot copy in ascending timestamp order.
func (j *MemoryJournal) List(_ context.Context) []model.MoodEntry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]model.MoodEntry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Latest returns the most recent entry.
func (j *MemoryJournal) Latest(_ context.Context) (model.MoodEntry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.entries) == 0 {
		return model.MoodEntry{}, ErrEmpty
	}
	return j.entries[len(j.entries)-1], nil
}

// Count returns the number of stored entries.
func (j *MemoryJournal) Count(_ context.Context) int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

// Close marks the journal closed; subsequent appends fail with ErrClosed.
func (j *MemoryJournal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.closed = true
	return nil
}
