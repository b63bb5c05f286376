// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers file and env values on top.
// - Scoring weights are exposed flat so a YAML file or env vars can retune
//   the engine without a code change. Load validates the result and fails
//   hard on a bad weight vector.
package config

import (
	"runtime"

	"github.com/getinward/inward/internal/domain/scoring"
)

// ScoringConfig mirrors the engine configuration with koanf tags so the
// weights and caps can be overridden from file or environment.
type ScoringConfig struct {
	// Mood composite weights. Stress is negative.
	MCValence float64 `koanf:"mc_valence"`
	MCEnergy  float64 `koanf:"mc_energy"`
	MCFocus   float64 `koanf:"mc_focus"`
	MCStress  float64 `koanf:"mc_stress"`

	// Daily success score blend.
	DSSLearning   float64 `koanf:"dss_learning"`
	DSSRecovery   float64 `koanf:"dss_recovery"`
	DSSConnection float64 `koanf:"dss_connection"`

	// SigmaFloor guards against zero-variance baselines.
	SigmaFloor float64 `koanf:"sigma_floor"`

	// SocialTags feed the connection sub-index.
	SocialTags []string `koanf:"social_tags"`

	// Driver confidence tiers by tag occurrence count.
	DriverHighThreshold   int `koanf:"driver_high_threshold"`
	DriverMediumThreshold int `koanf:"driver_medium_threshold"`
}

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory submission queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of ingestion workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the idempotency cache.
	DedupeSize int `koanf:"dedupe_size"`

	// PowerHoursTopN caps the peak/low cell lists of the power-hours matrix.
	PowerHoursTopN int `koanf:"power_hours_top_n"`

	// MinDriverOccurrences is the default occurrence floor for GET /drivers.
	MinDriverOccurrences int `koanf:"min_driver_occurrences"`

	Scoring ScoringConfig `koanf:"scoring"`
}

// New creates a Config with defaults.
func New() *Config {
	def := scoring.DefaultConfig()

	return &Config{
		LogLevel:             "info",
		Addr:                 ":9080",
		QueueSize:            10_000,
		WorkerCount:          runtime.NumCPU() * 2,
		DedupeSize:           50_000,
		PowerHoursTopN:       5,
		MinDriverOccurrences: 2,
		Scoring: ScoringConfig{
			MCValence:             def.MC.Valence,
			MCEnergy:              def.MC.Energy,
			MCFocus:               def.MC.Focus,
			MCStress:              def.MC.Stress,
			DSSLearning:           def.DSS.LM,
			DSSRecovery:           def.DSS.RI,
			DSSConnection:         def.DSS.CN,
			SigmaFloor:            def.SigmaFloor,
			SocialTags:            def.SocialTags,
			DriverHighThreshold:   def.Drivers.High,
			DriverMediumThreshold: def.Drivers.Medium,
		},
	}
}

// ScoringConfig materializes the engine configuration from the overridable
// fields, keeping the shipped defaults for everything not exposed here.
func (c *Config) ScoringConfig() scoring.Config {
	sc := scoring.DefaultConfig()

	sc.MC.Valence = c.Scoring.MCValence
	sc.MC.Energy = c.Scoring.MCEnergy
	sc.MC.Focus = c.Scoring.MCFocus
	sc.MC.Stress = c.Scoring.MCStress

	sc.DSS.LM = c.Scoring.DSSLearning
	sc.DSS.RI = c.Scoring.DSSRecovery
	sc.DSS.CN = c.Scoring.DSSConnection

	sc.SigmaFloor = c.Scoring.SigmaFloor
	sc.SocialTags = c.Scoring.SocialTags
	sc.Drivers.High = c.Scoring.DriverHighThreshold
	sc.Drivers.Medium = c.Scoring.DriverMediumThreshold

	return sc
}
