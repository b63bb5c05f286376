package scoring

// Component is one named sub-score inside a Result, kept for transparency:
// the UI tooltip and tests can see exactly how a value was built. MC
// components populate Mean and Sigma; DSS components leave them zero.
type Component struct {
	Raw          float64 `json:"raw"`
	Mean         float64 `json:"mean,omitempty"`
	Sigma        float64 `json:"sigma,omitempty"`
	Normalized   float64 `json:"normalized"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// Result is the outcome of one score computation. Produced fresh per call;
// never cached, since history can change between calls. An invalid result
// is a renderable "not enough data yet" state, not an error condition, so
// callers branch on Valid instead of an error return.
type Result struct {
	Value      float64              `json:"value"`
	Valid      bool                 `json:"is_valid"`
	Components map[string]Component `json:"components,omitempty"`
	Err        string               `json:"error,omitempty"`
}

// invalid builds a failed result carrying a descriptive message.
func invalid(msg string) Result {
	return Result{Valid: false, Err: msg}
}
