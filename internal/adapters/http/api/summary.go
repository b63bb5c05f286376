package api

import (
	"context"
	"net/http"

	"github.com/getinward/inward/internal/domain/scoring"
)

// SummaryDependencies defines what the summary endpoint needs.
type SummaryDependencies interface {
	Summary(ctx context.Context) (scoring.Summary, bool)
}

// summaryResponse wraps the score bundle with a has_data flag so the
// empty-journal state renders as data, not as an error.
type summaryResponse struct {
	HasData bool             `json:"has_data"`
	Summary *scoring.Summary `json:"summary,omitempty"`
}

// SummaryHandler serves the score bundle for the latest check-in.
type SummaryHandler struct {
	deps SummaryDependencies
}

// NewSummaryHandler creates a summary handler.
func NewSummaryHandler(deps SummaryDependencies) *SummaryHandler {
	return &SummaryHandler{deps: deps}
}

// HandleGetSummary handles GET /summary requests.
func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	summary, hasData := h.deps.Summary(r.Context())
	if !hasData {
		writeJSON(w, http.StatusOK, summaryResponse{HasData: false})
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{HasData: true, Summary: &summary})
}
