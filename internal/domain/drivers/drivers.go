// Package drivers ranks free-form tags by how strongly their presence
// correlates with a shift in the user's scores.
package drivers

import (
	"sort"
	"strings"

	"github.com/getinward/inward/internal/domain/model"
	"github.com/getinward/inward/internal/domain/scoring"
)

// Confidence expresses how much weight a driver deserves, derived from its
// occurrence count via the configured thresholds.
type Confidence string

// Confidence tiers.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Driver is the impact analysis of one tag: the difference between the mean
// MC/DSS of entries bearing the tag and entries lacking it, sign preserved.
type Driver struct {
	Tag         string     `json:"tag"`
	Occurrences int        `json:"occurrences"`
	MCImpact    float64    `json:"mc_impact"`
	DSSImpact   float64    `json:"dss_impact"`
	Confidence  Confidence `json:"confidence"`
}

// Analyzer correlates tags with score deviations.
type Analyzer struct {
	engine *scoring.Engine
}

// NewAnalyzer creates an analyzer backed by the given scoring engine.
func NewAnalyzer(engine *scoring.Engine) *Analyzer {
	return &Analyzer{engine: engine}
}

// Analyze groups entries by tag and reports, for every tag meeting the
// occurrence floor, the impact its presence has on MC and DSS. Per-entry MC
// is measured against the whole history as baseline; per-entry DSS is
// entry-local. The result is sorted by descending absolute MC impact; ties
// keep their grouping order.
func (a *Analyzer) Analyze(entries []model.MoodEntry, minOccurrences int) []Driver {
	if len(entries) == 0 {
		return nil
	}
	if minOccurrences < 1 {
		minOccurrences = 1
	}

	mc := make([]float64, len(entries))
	dss := make([]float64, len(entries))
	for i, e := range entries {
		if r := a.engine.MC(e, entries); r.Valid {
			mc[i] = r.Value
		}
		dss[i] = a.engine.DSS(e).Value
	}

	tagged := make(map[string][]int)
	order := make([]string, 0)
	for i, e := range entries {
		seen := make(map[string]struct{}, len(e.Tags))
		for _, raw := range e.Tags {
			tag := strings.ToLower(strings.TrimSpace(raw))
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			if _, known := tagged[tag]; !known {
				order = append(order, tag)
			}
			tagged[tag] = append(tagged[tag], i)
		}
	}

	thresholds := a.engine.Config().Drivers
	out := make([]Driver, 0, len(order))
	for _, tag := range order {
		withIdx := tagged[tag]
		if len(withIdx) < minOccurrences {
			continue
		}

		out = append(out, Driver{
			Tag:         tag,
			Occurrences: len(withIdx),
			MCImpact:    impact(mc, withIdx),
			DSSImpact:   impact(dss, withIdx),
			Confidence:  confidence(len(withIdx), thresholds),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return abs(out[i].MCImpact) > abs(out[j].MCImpact)
	})

	return out
}

// impact is the difference of means between the tagged and untagged groups.
// When either group is empty there is nothing to compare against and the
// impact is 0.
func impact(scores []float64, withIdx []int) float64 {
	if len(withIdx) == 0 || len(withIdx) == len(scores) {
		return 0
	}

	with := make(map[int]struct{}, len(withIdx))
	var withSum float64
	for _, i := range withIdx {
		with[i] = struct{}{}
		withSum += scores[i]
	}

	var withoutSum float64
	withoutN := 0
	for i, s := range scores {
		if _, ok := with[i]; !ok {
			withoutSum += s
			withoutN++
		}
	}

	return withSum/float64(len(withIdx)) - withoutSum/float64(withoutN)
}

func confidence(occurrences int, t scoring.DriverThresholds) Confidence {
	switch {
	case occurrences >= t.High:
		return ConfidenceHigh
	case occurrences >= t.Medium:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
