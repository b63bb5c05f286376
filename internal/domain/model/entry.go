// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeBucket is the coarse part of day a check-in belongs to.
type TimeBucket string

// Known time buckets.
const (
	BucketMorning TimeBucket = "morning"
	BucketMidday  TimeBucket = "midday"
	BucketEvening TimeBucket = "evening"
	BucketNight   TimeBucket = "night"
)

// Hour boundaries used when deriving a bucket from a timestamp.
const (
	morningStartHour = 5
	middayStartHour  = 11
	eveningStartHour = 17
	nightStartHour   = 22
)

// ParseBucket normalizes a textual bucket. The second return value is false
// for unknown values.
func ParseBucket(s string) (TimeBucket, bool) {
	switch TimeBucket(strings.ToLower(strings.TrimSpace(s))) {
	case BucketMorning:
		return BucketMorning, true
	case BucketMidday:
		return BucketMidday, true
	case BucketEvening:
		return BucketEvening, true
	case BucketNight:
		return BucketNight, true
	default:
		return "", false
	}
}

// BucketFor derives the bucket a timestamp falls into, for submissions that
// do not carry one explicitly.
func BucketFor(t time.Time) TimeBucket {
	switch h := t.Hour(); {
	case h >= morningStartHour && h < middayStartHour:
		return BucketMorning
	case h >= middayStartHour && h < eveningStartHour:
		return BucketMidday
	case h >= eveningStartHour && h < nightStartHour:
		return BucketEvening
	default:
		return BucketNight
	}
}

// MoodEntry is one immutable check-in record. Ratings are nominally in
// [0,5]; stress is inverted (higher is worse). Optional behavioral fields
// are nil when the user did not report them and resolve to 0 at scoring
// time. Input is free-form user data, so consumers tolerate out-of-range
// values rather than rejecting them.
type MoodEntry struct {
	ID        string     `json:"id"`
	Timestamp time.Time  `json:"timestamp"`
	Bucket    TimeBucket `json:"time_bucket"`

	Valence float64 `json:"valence"`
	Energy  float64 `json:"energy"`
	Focus   float64 `json:"focus"`
	Stress  float64 `json:"stress"`

	Tags []string `json:"tags,omitempty"`

	DeepworkMinutes   *float64 `json:"deepwork_minutes,omitempty"`
	TasksCompleted    *float64 `json:"tasks_completed,omitempty"`
	SleepHours        *float64 `json:"sleep_hours,omitempty"`
	SocialTouchpoints *float64 `json:"social_touchpoints,omitempty"`

	RecoveryAction bool `json:"recovery_action,omitempty"`
}

// NewID mints a unique entry identifier.
func NewID() string {
	return uuid.NewString()
}

// Float wraps a literal for the optional numeric fields.
func Float(v float64) *float64 {
	return &v
}
