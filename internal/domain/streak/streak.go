// Package streak computes consecutive-day logging streaks from check-in
// timestamps.
//
// A day counts as logged when at least one entry's timestamp falls on that
// calendar date. Dates are read straight off the timestamps with no timezone
// conversion; the caller's wall clock is authoritative for a single-user,
// single-device journal.
package streak

import (
	"sort"
	"time"

	"github.com/getinward/inward/internal/domain/model"
)

const day = 24 * time.Hour

// Result holds streak statistics. Dates are nil when there are no entries.
type Result struct {
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
	StreakStart   *time.Time `json:"streak_start_date"`
	LastEntry     *time.Time `json:"last_entry_date"`
	IsActive      bool       `json:"is_active"`
}

// Calculate derives streak statistics from the full entry history. The
// current streak is the run of consecutive logged days ending at the most
// recent logged day; IsActive reports whether that run is still alive, i.e.
// the most recent logged day is today or yesterday relative to now. Empty
// input yields the zero Result.
func Calculate(entries []model.MoodEntry, now time.Time) Result {
	if len(entries) == 0 {
		return Result{}
	}

	days := loggedDays(entries)

	current := 1
	for i := len(days) - 1; i > 0; i-- {
		if days[i].Sub(days[i-1]) != day {
			break
		}
		current++
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == day {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	last := days[len(days)-1]
	start := days[len(days)-current]
	today := dateOf(now)

	return Result{
		CurrentStreak: current,
		LongestStreak: longest,
		StreakStart:   &start,
		LastEntry:     &last,
		IsActive:      today.Equal(last) || today.Sub(last) == day,
	}
}

// loggedDays returns the distinct logged calendar days, ascending.
func loggedDays(entries []model.MoodEntry) []time.Time {
	seen := make(map[time.Time]struct{}, len(entries))
	for _, e := range entries {
		seen[dateOf(e.Timestamp)] = struct{}{}
	}

	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// dateOf truncates a timestamp to its own calendar date. UTC is used only
// as a uniform container for the date triple; the date itself is whatever
// the timestamp says it is.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
