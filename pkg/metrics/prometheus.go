// Package metrics provides Prometheus metrics for the SkyPath search service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the SkyPath service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Search metrics - the only hot path in the service
	searchRequests    *prometheus.CounterVec
	searchLatency     prometheus.Histogram
	searchItineraries prometheus.Histogram

	// Dataset metrics - set once after the startup load
	datasetAirports     prometheus.Gauge
	datasetFlights      prometheus.Gauge
	datasetDropped      *prometheus.GaugeVec
	datasetLoadDuration prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "skypath",
		subsystem:        "api",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.searchRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_requests_total",
		Help:      "Total number of itinerary searches by outcome",
	}, []string{"outcome"})

	m.searchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_latency_milliseconds",
		Help:      "Histogram of itinerary search latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.searchItineraries = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_itineraries_returned",
		Help:      "Histogram of itineraries returned per search",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
	})

	m.datasetAirports = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_airports",
		Help:      "Number of airports in the loaded registry",
	})

	m.datasetFlights = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_flights",
		Help:      "Number of flights kept by normalization",
	})

	m.datasetDropped = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_dropped_records",
		Help:      "Flight records dropped during normalization, by reason",
	}, []string{"reason"})

	m.datasetLoadDuration = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_load_duration_milliseconds",
		Help:      "Wall time of the startup dataset load and normalization",
	})
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, status string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

// RecordSearch records one search request with its outcome
// ("ok", "empty", "client_error"), latency, and result count.
func RecordSearch(outcome string, durationMs float64, itineraries int) {
	if !globalManager.enabled {
		return
	}
	globalManager.searchRequests.WithLabelValues(outcome).Inc()
	globalManager.searchLatency.Observe(durationMs)
	globalManager.searchItineraries.Observe(float64(itineraries))
}

// SetDatasetGauges publishes the post-load snapshot sizes.
func SetDatasetGauges(airports, flights int) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetAirports.Set(float64(airports))
	globalManager.datasetFlights.Set(float64(flights))
}

// SetDroppedRecords publishes one normalization rejection counter.
func SetDroppedRecords(reason string, count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetDropped.WithLabelValues(reason).Set(float64(count))
}

// SetDatasetLoadDuration publishes the startup load wall time.
func SetDatasetLoadDuration(durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetLoadDuration.Set(durationMs)
}

// GetRegistry returns the custom Prometheus registry used by the service.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
