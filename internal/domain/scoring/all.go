package scoring

import (
	"time"

	"github.com/getinward/inward/internal/domain/model"
	"github.com/getinward/inward/internal/domain/streak"
)

// Summary bundles the scores for one entry against one history snapshot.
type Summary struct {
	MC     Result        `json:"mc"`
	DSS    Result        `json:"dss"`
	Streak streak.Result `json:"streak"`
}

// All composes MC, DSS and the streak against the same inputs, for callers
// that want one snapshot-consistent bundle. The streak covers the full
// history plus the scored entry.
func (e *Engine) All(entry model.MoodEntry, history []model.MoodEntry, now time.Time) Summary {
	logged := make([]model.MoodEntry, 0, len(history)+1)
	logged = append(logged, history...)
	logged = append(logged, entry)

	return Summary{
		MC:     e.MC(entry, history),
		DSS:    e.DSS(entry),
		Streak: streak.Calculate(logged, now),
	}
}
