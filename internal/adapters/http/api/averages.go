package api

import (
	"context"
	"net/http"

	"github.com/getinward/inward/internal/domain/model"
	"github.com/getinward/inward/internal/domain/scoring"
)

// AveragesDependencies defines what the averages endpoint needs.
type AveragesDependencies interface {
	Averages(ctx context.Context, bucket model.TimeBucket) (scoring.SubIndices, int)
}

// averagesResponse carries the period sub-index averages plus how many
// entries went into them, so the UI can qualify thin data.
type averagesResponse struct {
	Averages scoring.SubIndices `json:"averages"`
	Entries  int                `json:"entries"`
}

// AveragesHandler serves the period LM/RI/CN averages.
type AveragesHandler struct {
	deps AveragesDependencies
}

// NewAveragesHandler creates an averages handler.
func NewAveragesHandler(deps AveragesDependencies) *AveragesHandler {
	return &AveragesHandler{deps: deps}
}

// HandleGetAverages handles GET /averages[?bucket=morning] requests.
func (h *AveragesHandler) HandleGetAverages(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_averages"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	var bucket model.TimeBucket
	if raw := r.URL.Query().Get("bucket"); raw != "" {
		b, ok := model.ParseBucket(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		bucket = b
	}

	averages, entries := h.deps.Averages(r.Context(), bucket)
	writeJSON(w, http.StatusOK, averagesResponse{Averages: averages, Entries: entries})
}
