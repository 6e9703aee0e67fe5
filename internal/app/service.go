// Package app provides the core business service that implements
// the dependencies required by the HTTP API.
package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/skypath/skypath/internal/dataset"
	"github.com/skypath/skypath/internal/domain/index"
	"github.com/skypath/skypath/internal/domain/layover"
	"github.com/skypath/skypath/internal/domain/model"
	"github.com/skypath/skypath/internal/domain/normalize"
	"github.com/skypath/skypath/internal/domain/registry"
	"github.com/skypath/skypath/internal/domain/search"
	"github.com/skypath/skypath/pkg/logger"
	"github.com/skypath/skypath/pkg/metrics"
)

// Service owns the immutable registry/index snapshot and the search engine
// built over it. The snapshot is constructed exactly once in Start; every
// read afterwards is lock-free.
type Service struct {
	mu sync.Mutex // guards Start/Stop only, not the read path

	// Configuration
	dataPath         string
	domesticMin      int
	internationalMin int
	maxLayover       int

	// Immutable after Start
	registry registry.Registry
	index    index.Index
	stats    model.Stats
	engine   *search.Engine

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataPath sets the dataset file loaded at startup.
func WithDataPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dataPath = path
		}
	}
}

// WithLayoverRules overrides the connection thresholds, in minutes.
func WithLayoverRules(domestic, international, maximum int) Option {
	return func(s *Service) {
		if domestic > 0 {
			s.domesticMin = domestic
		}
		if international > 0 {
			s.internationalMin = international
		}
		if maximum > 0 {
			s.maxLayover = maximum
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
		dataPath:         "/data/flights.json",
		domesticMin:      layover.DefaultDomesticMinimum,
		internationalMin: layover.DefaultInternationalMinimum,
		maxLayover:       layover.DefaultMaximum,
		logger:           nil, // resolved in Start
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads and normalizes the dataset, then publishes the immutable
// snapshot the search engine reads from. Any load failure is returned to
// the caller; the process must not serve requests without a snapshot.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "loading flights dataset", logger.String("path", s.dataPath))
	begin := time.Now()

	doc, err := dataset.Load(s.dataPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	reg, flights, stats := normalize.Run(doc)
	ix := index.Build(flights)

	validator := layover.New(reg,
		layover.WithDomesticMinimum(s.domesticMin),
		layover.WithInternationalMinimum(s.internationalMin),
		layover.WithMaximum(s.maxLayover),
	)

	s.registry = reg
	s.index = ix
	s.stats = stats
	s.engine = search.NewEngine(reg, ix, validator)
	s.started = true

	elapsed := time.Since(begin)
	publishDatasetMetrics(reg.Len(), stats, elapsed)

	s.logger.Info(ctx, "dataset loaded",
		logger.Int("airports", reg.Len()),
		logger.Int("flights", stats.KeptFlights),
		logger.Int("rawFlights", stats.RawFlights),
		logger.Duration("elapsed", elapsed),
	)
	return nil
}

// Stop releases the snapshot. Searches after Stop fail; there is no
// hot-reload path, a restart rebuilds the snapshot.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.engine = nil
	s.logger.Info(context.Background(), "search service stopped")
}

// Search answers one itinerary query. Codes are uppercase-trimmed here so
// the engine always sees canonical input. Fails with ErrNotStarted unless
// a Start has published a snapshot.
func (s *Service) Search(ctx context.Context, origin, destination, date string) ([]model.Itinerary, error) {
	engine := s.engine
	if engine == nil {
		return nil, ErrNotStarted
	}
	origin = canonicalCode(origin)
	destination = canonicalCode(destination)
	return engine.Search(ctx, origin, destination, date)
}

// Snapshot reports the loaded model sizes and normalization counters for
// the health endpoint.
func (s *Service) Snapshot(_ context.Context) (airports, flights int, stats model.Stats) {
	return s.registry.Len(), s.stats.KeptFlights, s.stats
}

// GetStats returns current service statistics.
func (s *Service) GetStats() model.ServiceStats {
	return model.ServiceStats{
		Airports:       s.registry.Len(),
		Flights:        s.stats.KeptFlights,
		IndexedOrigins: len(s.index),
		Stats:          s.stats,
	}
}

// publishDatasetMetrics pushes the one-time post-load gauges.
func publishDatasetMetrics(airports int, stats model.Stats, elapsed time.Duration) {
	metrics.SetDatasetGauges(airports, stats.KeptFlights)
	metrics.SetDroppedRecords("invalid_airport", stats.DroppedInvalidAirport)
	metrics.SetDroppedRecords("bad_price", stats.DroppedBadPrice)
	metrics.SetDroppedRecords("bad_datetime", stats.DroppedBadDatetime)
	metrics.SetDroppedRecords("bad_timezone", stats.DroppedBadTimezone)
	metrics.SetDroppedRecords("non_positive_duration", stats.DroppedNonPositiveDuration)
	metrics.SetDatasetLoadDuration(float64(elapsed.Milliseconds()))
}

// canonicalCode uppercases and trims a client-supplied airport code.
func canonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
