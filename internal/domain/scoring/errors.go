package scoring

import "errors"

// Sentinel error kinds for configuration validation. These allow errors.Is
// from callers.
var (
	ErrInvalidWeights    = errors.New("weight vector does not sum to 1.0")
	ErrInvalidFloor      = errors.New("non-positive floor or cap")
	ErrInvalidThresholds = errors.New("invalid thresholds")
)
