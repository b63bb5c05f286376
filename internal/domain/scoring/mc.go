package scoring

import (
	"math"

	"github.com/getinward/inward/internal/domain/model"
)

// MCOption narrows the historical population used as the MC baseline.
type MCOption func(*mcParams)

type mcParams struct {
	bucket model.TimeBucket
}

// WithBucket restricts the baseline to entries sharing a time bucket, so a
// morning check-in is compared against the user's own mornings.
func WithBucket(bucket model.TimeBucket) MCOption {
	return func(p *mcParams) {
		p.bucket = bucket
	}
}

// MC computes the mood composite for one entry: how its core ratings
// deviate from the user's own historical baseline, as a weighted sum of
// per-field z-scores. Whenever the historical standard deviation of a field
// is at or below the configured floor, the floor is substituted, so a flat
// baseline never divides to infinity.
//
// An empty (possibly bucket-filtered) history yields an invalid result with
// a descriptive message; it never panics and never returns a Go error.
func (e *Engine) MC(entry model.MoodEntry, history []model.MoodEntry, opts ...MCOption) Result {
	var params mcParams
	for _, opt := range opts {
		opt(&params)
	}

	if params.bucket != "" {
		filtered := make([]model.MoodEntry, 0, len(history))
		for _, h := range history {
			if h.Bucket == params.bucket {
				filtered = append(filtered, h)
			}
		}
		history = filtered
	}

	if len(history) == 0 {
		return invalid("insufficient historical data: baseline is empty")
	}

	r := resolve(entry)
	fields := []struct {
		name   string
		value  float64
		weight float64
		pick   func(resolved) float64
	}{
		{"valence", r.valence, e.cfg.MC.Valence, func(h resolved) float64 { return h.valence }},
		{"energy", r.energy, e.cfg.MC.Energy, func(h resolved) float64 { return h.energy }},
		{"focus", r.focus, e.cfg.MC.Focus, func(h resolved) float64 { return h.focus }},
		{"stress", r.stress, e.cfg.MC.Stress, func(h resolved) float64 { return h.stress }},
	}

	baseline := make([]resolved, len(history))
	for i, h := range history {
		baseline[i] = resolve(h)
	}

	components := make(map[string]Component, len(fields))
	value := 0.0
	for _, f := range fields {
		series := make([]float64, len(baseline))
		for i, h := range baseline {
			series[i] = f.pick(h)
		}

		mean, sigma := meanSigma(series)
		if sigma <= e.cfg.SigmaFloor {
			sigma = e.cfg.SigmaFloor
		}

		z := (f.value - mean) / sigma
		contribution := f.weight * z
		value += contribution

		components[f.name] = Component{
			Raw:          f.value,
			Mean:         mean,
			Sigma:        sigma,
			Normalized:   z,
			Weight:       f.weight,
			Contribution: contribution,
		}
	}

	return Result{Value: value, Valid: true, Components: components}
}

// meanSigma returns the mean and population standard deviation of a
// non-empty series.
func meanSigma(series []float64) (mean, sigma float64) {
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	var sumSq float64
	for _, v := range series {
		d := v - mean
		sumSq += d * d
	}
	sigma = math.Sqrt(sumSq / float64(len(series)))
	return mean, sigma
}
