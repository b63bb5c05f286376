package scoring

import (
	"fmt"
	"math"
)

// Tolerance for weight-vector sums.
const weightTolerance = 0.001

// MCWeights blends the four per-field baseline deviations into one mood
// composite. Stress carries a negative sign since higher stress is worse.
// The absolute values must sum to 1.
type MCWeights struct {
	Valence float64
	Energy  float64
	Focus   float64
	Stress  float64
}

// DSSWeights blends the three behavioral sub-indices into the daily success
// score. Must sum to 1.
type DSSWeights struct {
	LM float64
	RI float64
	CN float64
}

// LMWeights blends the learning-momentum components. Must sum to 1.
type LMWeights struct {
	Focus    float64
	Deepwork float64
	Tasks    float64
}

// RIWeights blends the recovery-index components. Must sum to 1.
type RIWeights struct {
	Sleep    float64
	Recovery float64
	Stress   float64
}

// CNWeights blends the connection components. Must sum to 1.
type CNWeights struct {
	Valence float64
	Social  float64
	Tags    float64
}

// Caps are the saturation points for the normalized sub-index components.
type Caps struct {
	DeepworkMinutes   float64
	Tasks             float64
	SleepHours        float64
	SocialTouchpoints float64
	SocialTags        float64
}

// RawCaps are the saturation points for the DSS raw sub-scores.
type RawCaps struct {
	LM float64
	RI float64
	CN float64
}

// DriverThresholds maps tag occurrence counts to confidence tiers:
// high when occurrences >= High, medium when >= Medium, low otherwise.
type DriverThresholds struct {
	High   int
	Medium int
}

// Config holds every weight, cap and threshold the engine uses. Validate
// must pass before an Engine is built from it; a config that fails
// validation is a programming error, not user input.
type Config struct {
	MC  MCWeights
	DSS DSSWeights
	LM  LMWeights
	RI  RIWeights
	CN  CNWeights

	Caps    Caps
	RawCaps RawCaps

	// SigmaFloor substitutes for the historical standard deviation whenever
	// the true value would be zero or smaller, so identical baselines never
	// divide to infinity.
	SigmaFloor float64

	// SocialTags is the lookup set feeding the connection sub-index.
	SocialTags []string

	Drivers DriverThresholds
}

// DefaultConfig returns the shipped scoring configuration.
func DefaultConfig() Config {
	return Config{
		MC:  MCWeights{Valence: 0.30, Energy: 0.25, Focus: 0.25, Stress: -0.20},
		DSS: DSSWeights{LM: 0.40, RI: 0.35, CN: 0.25},
		LM:  LMWeights{Focus: 0.5, Deepwork: 0.3, Tasks: 0.2},
		RI:  RIWeights{Sleep: 0.4, Recovery: 0.3, Stress: 0.3},
		CN:  CNWeights{Valence: 0.4, Social: 0.4, Tags: 0.2},
		Caps: Caps{
			DeepworkMinutes:   180,
			Tasks:             10,
			SleepHours:        8,
			SocialTouchpoints: 5,
			SocialTags:        3,
		},
		RawCaps:    RawCaps{LM: 300, RI: 10, CN: 5},
		SigmaFloor: 0.1,
		SocialTags: []string{"social", "friends", "family", "party", "dating"},
		Drivers:    DriverThresholds{High: 10, Medium: 5},
	}
}

// Validate checks the configuration invariants: every weight vector sums to
// 1 (absolute values for MC) within tolerance, the sigma floor and caps are
// positive, and the driver tiers are ordered. A failure here should be
// treated as fatal at startup.
func (c Config) Validate() error {
	checks := []struct {
		name string
		sum  float64
	}{
		{"mc weights (absolute)", math.Abs(c.MC.Valence) + math.Abs(c.MC.Energy) + math.Abs(c.MC.Focus) + math.Abs(c.MC.Stress)},
		{"dss weights", c.DSS.LM + c.DSS.RI + c.DSS.CN},
		{"lm weights", c.LM.Focus + c.LM.Deepwork + c.LM.Tasks},
		{"ri weights", c.RI.Sleep + c.RI.Recovery + c.RI.Stress},
		{"cn weights", c.CN.Valence + c.CN.Social + c.CN.Tags},
	}
	for _, check := range checks {
		if math.Abs(check.sum-1.0) > weightTolerance {
			return fmt.Errorf("%w: %s sum to %v, want 1.0", ErrInvalidWeights, check.name, check.sum)
		}
	}

	if !(c.SigmaFloor > 0) {
		return fmt.Errorf("%w: sigma floor %v must be positive", ErrInvalidFloor, c.SigmaFloor)
	}

	caps := []struct {
		name string
		v    float64
	}{
		{"deepwork minutes cap", c.Caps.DeepworkMinutes},
		{"tasks cap", c.Caps.Tasks},
		{"sleep hours cap", c.Caps.SleepHours},
		{"social touchpoints cap", c.Caps.SocialTouchpoints},
		{"social tags cap", c.Caps.SocialTags},
		{"lm raw cap", c.RawCaps.LM},
		{"ri raw cap", c.RawCaps.RI},
		{"cn raw cap", c.RawCaps.CN},
	}
	for _, limit := range caps {
		if !(limit.v > 0) {
			return fmt.Errorf("%w: %s %v must be positive", ErrInvalidFloor, limit.name, limit.v)
		}
	}

	if c.Drivers.Medium < 1 || c.Drivers.High <= c.Drivers.Medium {
		return fmt.Errorf("%w: driver thresholds high=%d medium=%d must satisfy high > medium >= 1",
			ErrInvalidThresholds, c.Drivers.High, c.Drivers.Medium)
	}

	if len(c.SocialTags) == 0 {
		return fmt.Errorf("%w: social tag set must not be empty", ErrInvalidThresholds)
	}

	return nil
}

// ValidateConfig is the boolean self-check form of Validate, for callers
// that only need a pass/fail answer at startup.
func ValidateConfig(c Config) bool {
	return c.Validate() == nil
}
