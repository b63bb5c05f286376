package api

import (
	"context"
	"net/http"

	"github.com/getinward/inward/internal/domain/powerhours"
)

// PowerHoursDependencies defines what the power-hours endpoint needs.
type PowerHoursDependencies interface {
	PowerHours(ctx context.Context) powerhours.Result
}

// PowerHoursHandler serves the weekday-by-hour productivity matrix.
type PowerHoursHandler struct {
	deps PowerHoursDependencies
}

// NewPowerHoursHandler creates a power-hours handler.
func NewPowerHoursHandler(deps PowerHoursDependencies) *PowerHoursHandler {
	return &PowerHoursHandler{deps: deps}
}

// HandleGetPowerHours handles GET /powerhours requests.
func (h *PowerHoursHandler) HandleGetPowerHours(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.PowerHours(r.Context()))
}
