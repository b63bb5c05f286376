package api

import (
	"context"
	"net/http"

	"github.com/getinward/inward/internal/domain/streak"
)

// StreakDependencies defines what the streak endpoint needs.
type StreakDependencies interface {
	Streak(ctx context.Context) streak.Result
}

// StreakHandler serves logging-streak statistics.
type StreakHandler struct {
	deps StreakDependencies
}

// NewStreakHandler creates a streak handler.
func NewStreakHandler(deps StreakDependencies) *StreakHandler {
	return &StreakHandler{deps: deps}
}

// HandleGetStreak handles GET /streak requests.
func (h *StreakHandler) HandleGetStreak(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Streak(r.Context()))
}
