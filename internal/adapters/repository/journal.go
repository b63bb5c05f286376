// Package repository defines the journal store interface and errors.
//
// The journal is the persistence collaborator of the scoring engine: it
// owns the entry history and hands out immutable snapshots, so every
// analytics call sees one consistent view regardless of concurrent writes.
package repository

import (
	"context"

	"github.com/getinward/inward/internal/domain/model"
)

// Journal provides append and snapshot access to the check-in history.
type Journal interface {
	// Append stores a new entry. Entries arriving out of order are placed
	// by timestamp.
	Append(ctx context.Context, entry model.MoodEntry) error

	// List returns a snapshot copy of all entries in ascending timestamp
	// order. Mutating the returned slice does not affect the journal.
	List(ctx context.Context) []model.MoodEntry

	// Latest returns the most recent entry, or ErrEmpty.
	Latest(ctx context.Context) (model.MoodEntry, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) int
}
