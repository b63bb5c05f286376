package scoring

import (
	"github.com/getinward/inward/internal/domain/model"
)

// SubIndices are the three behavioral sub-indices of one entry, each in
// [0,1]: learning momentum, recovery and connection.
type SubIndices struct {
	LM float64 `json:"lm"`
	RI float64 `json:"ri"`
	CN float64 `json:"cn"`
}

// SubIndices computes the weighted sub-index blend for a single entry.
// Every component is clamped to [0,1] before weighting, so out-of-range
// user input degrades instead of distorting the blend.
func (e *Engine) SubIndices(entry model.MoodEntry) SubIndices {
	r := resolve(entry)

	recovery := 0.0
	if r.recovery {
		recovery = 1.0
	}

	lm := e.cfg.LM.Focus*clamp01(r.focus/ratingMax) +
		e.cfg.LM.Deepwork*saturate(r.deepwork, e.cfg.Caps.DeepworkMinutes) +
		e.cfg.LM.Tasks*saturate(r.tasks, e.cfg.Caps.Tasks)

	ri := e.cfg.RI.Sleep*saturate(r.sleep, e.cfg.Caps.SleepHours) +
		e.cfg.RI.Recovery*recovery +
		e.cfg.RI.Stress*clamp01((ratingMax-r.stress)/ratingMax)

	cn := e.cfg.CN.Valence*clamp01(r.valence/ratingMax) +
		e.cfg.CN.Social*saturate(r.social, e.cfg.Caps.SocialTouchpoints) +
		e.cfg.CN.Tags*saturate(e.countSocialTags(r.tags), e.cfg.Caps.SocialTags)

	return SubIndices{LM: lm, RI: ri, CN: cn}
}

// PeriodAverages averages each sub-index across a period's entries. Empty
// input yields all zeros; there is no divide-by-zero case.
func (e *Engine) PeriodAverages(entries []model.MoodEntry) SubIndices {
	if len(entries) == 0 {
		return SubIndices{}
	}

	var sum SubIndices
	for _, entry := range entries {
		si := e.SubIndices(entry)
		sum.LM += si.LM
		sum.RI += si.RI
		sum.CN += si.CN
	}

	n := float64(len(entries))
	return SubIndices{LM: sum.LM / n, RI: sum.RI / n, CN: sum.CN / n}
}
