// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	entryqueue "github.com/getinward/inward/internal/adapters/mq/queue"
	workerpool "github.com/getinward/inward/internal/adapters/mq/worker"
	repository "github.com/getinward/inward/internal/adapters/repository"
	"github.com/getinward/inward/internal/domain/dedupe"
	"github.com/getinward/inward/internal/domain/drivers"
	"github.com/getinward/inward/internal/domain/model"
	"github.com/getinward/inward/internal/domain/powerhours"
	"github.com/getinward/inward/internal/domain/scoring"
	"github.com/getinward/inward/internal/domain/streak"
	"github.com/getinward/inward/pkg/logger"
	"github.com/getinward/inward/pkg/metrics"
)

// Service implements the API dependencies for the wellness journal.
type Service struct {
	mu sync.RWMutex

	// Core components
	journal    repository.Journal
	deduper    dedupe.Deduper
	entryQueue entryqueue.Queue
	engine     *scoring.Engine
	analyzer   *drivers.Analyzer
	generator  *powerhours.Generator
	workerPool *workerpool.Pool

	// Configuration
	workerCount         int
	queueSize           int
	dedupeSize          int
	scoringConfig       scoring.Config
	powerHoursTopN      int
	minDriverOccurrence int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of ingestion workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the capacity of the submission queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the idempotency cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithScoringConfig replaces the default scoring configuration. The config
// must already be validated; Start does not re-check it.
func WithScoringConfig(cfg scoring.Config) Option {
	return func(s *Service) {
		s.scoringConfig = cfg
	}
}

// WithPowerHoursTopN sets how many peak and low cells the power-hours
// matrix reports.
func WithPowerHoursTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.powerHoursTopN = n
		}
	}
}

// WithMinDriverOccurrences sets the default occurrence floor for the tag
// driver analysis.
func WithMinDriverOccurrences(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minDriverOccurrence = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:         4,
		queueSize:           10000,
		dedupeSize:          50000,
		scoringConfig:       scoring.DefaultConfig(),
		powerHoursTopN:      5,
		minDriverOccurrence: 2,
		logger:              nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting journal service...")

	s.journal = repository.NewMemoryJournal()
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.entryQueue = entryqueue.NewInMemoryQueue(
		entryqueue.WithCapacity(s.queueSize),
	)

	s.engine = scoring.NewEngine(
		scoring.WithConfig(s.scoringConfig),
	)
	s.analyzer = drivers.NewAnalyzer(s.engine)
	s.generator = powerhours.NewGenerator(s.engine,
		powerhours.WithTopN(s.powerHoursTopN),
	)

	s.workerPool = workerpool.NewPool(s.workerCount, s.entryQueue, s.journal)
	s.workerPool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "journal service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
	)

	return nil
}

// Stop gracefully shuts down the service. The queue closes first so the
// workers drain whatever was accepted before Stop.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping journal service...")

	if s.entryQueue != nil {
		_ = s.entryQueue.Close()
	}

	if s.workerPool != nil {
		s.workerPool.Stop()
	}

	if closer, ok := s.journal.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "journal service stopped")
}

// SeenAndRecord atomically checks if an entry id was seen and records it if
// not. Returns true if the entry was already seen.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	seen := s.deduper.SeenAndRecord(ctx, id)
	if seen {
		metrics.RecordEntryDuplicate()
	}
	return seen
}

// Unrecord removes an entry ID from the seen list, allowing it to be retried.
func (s *Service) Unrecord(ctx context.Context, id string) {
	s.deduper.Unrecord(ctx, id)
}

// Enqueue submits an entry for asynchronous ingestion. Returns false when
// the queue rejects it.
func (s *Service) Enqueue(ctx context.Context, entry model.MoodEntry) bool {
	ok := s.entryQueue.Enqueue(ctx, entry)
	if !ok {
		s.logger.Warn(ctx, "entry rejected by queue",
			logger.String("entryID", entry.ID),
		)
	}
	return ok
}

// Summary scores the latest entry against the rest of the journal. The
// second return is false when the journal is empty.
func (s *Service) Summary(ctx context.Context) (scoring.Summary, bool) {
	entries := s.journal.List(ctx)
	if len(entries) == 0 {
		metrics.RecordInsufficientData()
		return scoring.Summary{}, false
	}

	latest := entries[len(entries)-1]
	history := entries[:len(entries)-1]

	start := time.Now()
	summary := s.engine.All(latest, history, time.Now())
	metrics.RecordComputeLatency("summary", float64(time.Since(start).Milliseconds()))

	return summary, true
}

// Streak reports the consecutive-day logging streak.
func (s *Service) Streak(ctx context.Context) streak.Result {
	return streak.Calculate(s.journal.List(ctx), time.Now())
}

// Drivers reports tag impact on mood and daily success. A minOccurrences
// below 1 falls back to the configured default.
func (s *Service) Drivers(ctx context.Context, minOccurrences int) []drivers.Driver {
	if minOccurrences < 1 {
		minOccurrences = s.minDriverOccurrence
	}

	start := time.Now()
	out := s.analyzer.Analyze(s.journal.List(ctx), minOccurrences)
	metrics.RecordComputeLatency("drivers", float64(time.Since(start).Milliseconds()))

	return out
}

// PowerHours builds the weekday-by-hour performance matrix.
func (s *Service) PowerHours(ctx context.Context) powerhours.Result {
	start := time.Now()
	out := s.generator.Generate(s.journal.List(ctx), time.Now())
	metrics.RecordComputeLatency("powerhours", float64(time.Since(start).Milliseconds()))

	return out
}

// Averages returns the mean sub-indices over the journal, optionally
// restricted to one time bucket, along with how many entries contributed.
func (s *Service) Averages(ctx context.Context, bucket model.TimeBucket) (scoring.SubIndices, int) {
	entries := s.journal.List(ctx)
	if bucket != "" {
		filtered := entries[:0:0]
		for _, e := range entries {
			if e.Bucket == bucket {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	return s.engine.PeriodAverages(entries), len(entries)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
	}

	if s.started {
		stats["queueLength"] = s.entryQueue.Len(ctx)
		stats["journalSize"] = s.journal.Count(ctx)
		stats["dedupeEntries"] = s.deduper.Size()
	}

	return stats
}
