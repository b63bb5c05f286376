// Package powerhours builds the weekday-by-hour productivity matrix that
// shows when the user historically scores best and worst.
package powerhours

import (
	"sort"
	"time"

	"github.com/getinward/inward/internal/domain/model"
	"github.com/getinward/inward/internal/domain/scoring"
)

// Matrix dimensions: weekdays (Sunday = 0) by hours of day.
const (
	Weekdays    = 7
	HoursPerDay = 24
)

const defaultTopN = 5

// Cell is one non-empty matrix cell with its average score.
type Cell struct {
	Weekday int     `json:"weekday"`
	Hour    int     `json:"hour"`
	Score   float64 `json:"score"`
}

// Result is the full matrix plus the extracted extremes. Cells with no
// entries hold exactly 0, never NaN.
type Result struct {
	Matrix      [Weekdays][HoursPerDay]float64 `json:"matrix"`
	PeakHours   []Cell                         `json:"peak_hours"`
	LowHours    []Cell                         `json:"low_hours"`
	LastUpdated time.Time                      `json:"last_updated"`
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithTopN sets how many peak and low cells are extracted.
func WithTopN(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.topN = n
		}
	}
}

// Generator averages a per-entry score into weekday/hour buckets.
type Generator struct {
	engine *scoring.Engine
	topN   int
}

// NewGenerator creates a generator backed by the given scoring engine.
func NewGenerator(engine *scoring.Engine, opts ...Option) *Generator {
	g := &Generator{
		engine: engine,
		topN:   defaultTopN,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate builds the matrix from the full entry history. Each cell is the
// mean composite score of the entries whose timestamp falls into that
// weekday/hour bucket. LastUpdated records when the computation ran, not
// anything derived from the entries.
func (g *Generator) Generate(entries []model.MoodEntry, now time.Time) Result {
	var sums, counts [Weekdays][HoursPerDay]float64

	for _, e := range entries {
		wd := int(e.Timestamp.Weekday())
		h := e.Timestamp.Hour()
		sums[wd][h] += g.engine.Composite(e)
		counts[wd][h]++
	}

	res := Result{LastUpdated: now}
	occupied := make([]Cell, 0, len(entries))
	for wd := 0; wd < Weekdays; wd++ {
		for h := 0; h < HoursPerDay; h++ {
			if counts[wd][h] == 0 {
				continue
			}
			score := sums[wd][h] / counts[wd][h]
			res.Matrix[wd][h] = score
			occupied = append(occupied, Cell{Weekday: wd, Hour: h, Score: score})
		}
	}

	res.PeakHours = topCells(occupied, g.topN, func(a, b Cell) bool { return a.Score > b.Score })
	res.LowHours = topCells(occupied, g.topN, func(a, b Cell) bool { return a.Score < b.Score })

	return res
}

// topCells returns up to n cells under the given ordering without mutating
// the input.
func topCells(cells []Cell, n int, less func(a, b Cell) bool) []Cell {
	sorted := make([]Cell, len(cells))
	copy(sorted, cells)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
