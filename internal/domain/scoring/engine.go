// Package scoring implements the wellness scoring engine: the mood
// composite (MC), the daily success score (DSS), the behavioral sub-indices
// feeding it, and the aggregate summary.
//
// Every calculation is a pure function of its inputs. The engine holds only
// immutable configuration, never state derived from entries, so concurrent
// calls need no coordination and identical inputs always produce identical
// results.
package scoring

import (
	"math"

	"github.com/getinward/inward/internal/domain/model"
)

// Rating scale upper bound.
const ratingMax = 5.0

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithConfig replaces the default scoring configuration. The caller is
// responsible for validating the config first.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// Engine computes wellness scores from check-in entries.
type Engine struct {
	cfg        Config
	socialTags map[string]struct{}
}

// NewEngine creates an engine with the default configuration, then applies
// options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		cfg: DefaultConfig(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.socialTags = make(map[string]struct{}, len(e.cfg.SocialTags))
	for _, tag := range e.cfg.SocialTags {
		e.socialTags[tag] = struct{}{}
	}

	return e
}

// Config returns the engine's scoring configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Composite is a cheap per-entry wellbeing score on the rating scale: the
// mean of valence, energy, focus and inverted stress, each clamped to
// [0,5]. Used where a baseline-relative MC would be overkill, e.g. the
// power-hours matrix.
func (e *Engine) Composite(entry model.MoodEntry) float64 {
	r := resolve(entry)
	return (r.valence + r.energy + r.focus + (ratingMax - r.stress)) / 4
}

// resolved carries an entry's fields after the resolve-with-default step:
// optional fields coerced to 0, non-finite values dropped, ratings clamped
// to the nominal scale. All formulas operate on resolved values only.
type resolved struct {
	valence float64
	energy  float64
	focus   float64
	stress  float64

	deepwork float64
	tasks    float64
	sleep    float64
	social   float64

	recovery bool
	tags     []string
}

func resolve(entry model.MoodEntry) resolved {
	return resolved{
		valence:  clampRating(entry.Valence),
		energy:   clampRating(entry.Energy),
		focus:    clampRating(entry.Focus),
		stress:   clampRating(entry.Stress),
		deepwork: optional(entry.DeepworkMinutes),
		tasks:    optional(entry.TasksCompleted),
		sleep:    optional(entry.SleepHours),
		social:   optional(entry.SocialTouchpoints),
		recovery: entry.RecoveryAction,
		tags:     entry.Tags,
	}
}

// optional resolves a missing or unusable optional field to 0. Negative
// values are user input noise and resolve to 0 as well.
func optional(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return 0
	}
	return *v
}

// clampRating bounds a user rating to the nominal [0,5] scale.
func clampRating(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > ratingMax {
		return ratingMax
	}
	return v
}

// clamp01 bounds v to [0,1].
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// saturate maps v onto [0,1] against a cap: v/cap, clamped.
func saturate(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return clamp01(v / limit)
}

// countSocialTags counts how many of an entry's tags are in the configured
// social set.
func (e *Engine) countSocialTags(tags []string) float64 {
	n := 0
	for _, tag := range tags {
		if _, ok := e.socialTags[tag]; ok {
			n++
		}
	}
	return float64(n)
}
