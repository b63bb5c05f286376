package scoring

import (
	"github.com/getinward/inward/internal/domain/model"
)

// Task completion feeds the learning-momentum raw score at ten points per
// completed task.
const tasksRawMultiplier = 10

// DSS computes the daily success score for one entry. Unlike MC it needs no
// history: the three raw sub-scores come straight from the entry's
// behavioral fields, are saturated against the configured caps, and are
// blended by the DSS weights.
//
// Missing optional fields resolve to 0 and the result stays valid; the raw
// closed forms are
//
//	lm.raw = deepworkMinutes + 10*tasksCompleted
//	ri.raw = sleepHours + (recoveryAction ? 1 : 0)
//	cn.raw = socialTouchpoints
func (e *Engine) DSS(entry model.MoodEntry) Result {
	r := resolve(entry)

	recovery := 0.0
	if r.recovery {
		recovery = 1.0
	}

	subs := []struct {
		name   string
		raw    float64
		cap    float64
		weight float64
	}{
		{"lm", r.deepwork + tasksRawMultiplier*r.tasks, e.cfg.RawCaps.LM, e.cfg.DSS.LM},
		{"ri", r.sleep + recovery, e.cfg.RawCaps.RI, e.cfg.DSS.RI},
		{"cn", r.social, e.cfg.RawCaps.CN, e.cfg.DSS.CN},
	}

	components := make(map[string]Component, len(subs))
	value := 0.0
	for _, s := range subs {
		norm := saturate(s.raw, s.cap)
		contribution := s.weight * norm
		value += contribution

		components[s.name] = Component{
			Raw:          s.raw,
			Normalized:   norm,
			Weight:       s.weight,
			Contribution: contribution,
		}
	}

	return Result{Value: value, Valid: true, Components: components}
}
