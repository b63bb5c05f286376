package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/getinward/inward/internal/domain/model"
	"github.com/getinward/inward/pkg/metrics"
)

// EntryDependencies defines what entry submission needs.
type EntryDependencies interface {
	SeenAndRecord(ctx context.Context, id string) bool
	Unrecord(ctx context.Context, id string)
	Enqueue(ctx context.Context, entry model.MoodEntry) bool
}

// EntriesHandler handles check-in submissions.
type EntriesHandler struct {
	deps EntryDependencies
}

// NewEntriesHandler creates an entries handler.
func NewEntriesHandler(deps EntryDependencies) *EntriesHandler {
	return &EntriesHandler{deps: deps}
}

// HandlePostEntry handles POST /entries requests.
func (h *EntriesHandler) HandlePostEntry(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_entry"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordEntryRejected()
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		metrics.RecordEntryRejected()
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	entry := req.toEntry()

	// Idempotency check first, so a resubmitted check-in is acknowledged
	// without being recorded twice.
	if h.deps.SeenAndRecord(r.Context(), entry.ID) {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", ID: entry.ID, Duplicate: true})
		return
	}

	if ok := h.deps.Enqueue(r.Context(), entry); !ok {
		// Roll back the seen mark so the client can retry.
		h.deps.Unrecord(r.Context(), entry.ID)
		writeError(w, http.StatusTooManyRequests, "backpressure", NewKind(op, ErrBackpressure))
		return
	}

	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", ID: entry.ID, Duplicate: false})
}
