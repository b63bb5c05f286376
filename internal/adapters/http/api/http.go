// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/getinward/inward/internal/domain/drivers"
	"github.com/getinward/inward/internal/domain/model"
	"github.com/getinward/inward/internal/domain/powerhours"
	"github.com/getinward/inward/internal/domain/scoring"
	"github.com/getinward/inward/internal/domain/streak"
)

// Dependencies required by the HTTP handlers. An interface bundle keeps the
// handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// Idempotency tracking for entry submissions.
	SeenAndRecord(ctx context.Context, id string) bool
	Unrecord(ctx context.Context, id string)

	// Enqueue pushes an entry for async ingestion. Returns false on
	// backpressure.
	Enqueue(ctx context.Context, entry model.MoodEntry) bool

	// Read operations expose the analytics. A false hasData means the
	// journal is empty, a renderable state rather than an error.
	Summary(ctx context.Context) (summary scoring.Summary, hasData bool)
	Streak(ctx context.Context) streak.Result
	Drivers(ctx context.Context, minOccurrences int) []drivers.Driver
	PowerHours(ctx context.Context) powerhours.Result
	Averages(ctx context.Context, bucket model.TimeBucket) (scoring.SubIndices, int)
}

// Server wires HTTP routes for the journal API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	entriesHandler    *EntriesHandler
	summaryHandler    *SummaryHandler
	streakHandler     *StreakHandler
	driversHandler    *DriversHandler
	powerHoursHandler *PowerHoursHandler
	averagesHandler   *AveragesHandler
}

// NewServer creates an API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		entriesHandler:    NewEntriesHandler(deps),
		summaryHandler:    NewSummaryHandler(deps),
		streakHandler:     NewStreakHandler(deps),
		driversHandler:    NewDriversHandler(deps),
		powerHoursHandler: NewPowerHoursHandler(deps),
		averagesHandler:   NewAveragesHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/entries", MetricsMiddleware(s.entriesHandler.HandlePostEntry, "entries"))
	mux.HandleFunc("/summary", MetricsMiddleware(s.summaryHandler.HandleGetSummary, "summary"))
	mux.HandleFunc("/streak", MetricsMiddleware(s.streakHandler.HandleGetStreak, "streak"))
	mux.HandleFunc("/drivers", MetricsMiddleware(s.driversHandler.HandleGetDrivers, "drivers"))
	mux.HandleFunc("/powerhours", MetricsMiddleware(s.powerHoursHandler.HandleGetPowerHours, "powerhours"))
	mux.HandleFunc("/averages", MetricsMiddleware(s.averagesHandler.HandleGetAverages, "averages"))
}

// entryRequest is the wire shape for POST /entries.
type entryRequest struct {
	ID         string   `json:"id"`
	Timestamp  string   `json:"timestamp"`
	TimeBucket string   `json:"time_bucket"`
	Valence    float64  `json:"valence"`
	Energy     float64  `json:"energy"`
	Focus      float64  `json:"focus"`
	Stress     float64  `json:"stress"`
	Tags       []string `json:"tags"`

	DeepworkMinutes   *float64 `json:"deepwork_minutes"`
	TasksCompleted    *float64 `json:"tasks_completed"`
	SleepHours        *float64 `json:"sleep_hours"`
	SocialTouchpoints *float64 `json:"social_touchpoints"`

	RecoveryAction bool `json:"recovery_action"`
}

func (e entryRequest) validate() error {
	if strings.TrimSpace(e.Timestamp) == "" {
		return errors.New("missing timestamp")
	}
	if _, err := time.Parse(time.RFC3339, e.Timestamp); err != nil {
		return errors.New("invalid timestamp; must be RFC3339")
	}
	if e.TimeBucket != "" {
		if _, ok := model.ParseBucket(e.TimeBucket); !ok {
			return errors.New("unknown time_bucket")
		}
	}
	return nil
}

// toEntry builds the domain entry, minting an ID and deriving the bucket
// when the client did not supply them. Ratings are passed through as-is;
// the engine clamps at scoring time.
func (e entryRequest) toEntry() model.MoodEntry {
	ts, _ := time.Parse(time.RFC3339, e.Timestamp)

	id := strings.TrimSpace(e.ID)
	if id == "" {
		id = model.NewID()
	}

	bucket, ok := model.ParseBucket(e.TimeBucket)
	if !ok {
		bucket = model.BucketFor(ts)
	}

	tags := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		tags = nil
	}

	return model.MoodEntry{
		ID:                id,
		Timestamp:         ts,
		Bucket:            bucket,
		Valence:           e.Valence,
		Energy:            e.Energy,
		Focus:             e.Focus,
		Stress:            e.Stress,
		Tags:              tags,
		DeepworkMinutes:   e.DeepworkMinutes,
		TasksCompleted:    e.TasksCompleted,
		SleepHours:        e.SleepHours,
		SocialTouchpoints: e.SocialTouchpoints,
		RecoveryAction:    e.RecoveryAction,
	}
}

type ackResponse struct {
	Status    string `json:"status"`
	ID        string `json:"id"`
	Duplicate bool   `json:"duplicate"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
