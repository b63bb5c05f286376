package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/getinward/inward/internal/domain/drivers"
)

// DriversDependencies defines what the drivers endpoint needs.
type DriversDependencies interface {
	Drivers(ctx context.Context, minOccurrences int) []drivers.Driver
}

// DriversHandler serves the tag impact ranking.
type DriversHandler struct {
	deps DriversDependencies
}

// NewDriversHandler creates a drivers handler.
func NewDriversHandler(deps DriversDependencies) *DriversHandler {
	return &DriversHandler{deps: deps}
}

// HandleGetDrivers handles GET /drivers?min_occurrences=N requests. The
// parameter is optional; the service applies its configured default.
func (h *DriversHandler) HandleGetDrivers(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_drivers"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	minOccurrences := 0
	if raw := r.URL.Query().Get("min_occurrences"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		minOccurrences = n
	}

	result := h.deps.Drivers(r.Context(), minOccurrences)
	if result == nil {
		result = []drivers.Driver{}
	}
	writeJSON(w, http.StatusOK, result)
}
