// Package metrics provides Prometheus metrics for the scouting service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values shared by the outcome counters.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Manager manages all Prometheus metrics for the scouting service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Ratings
	ratingsSubmitted prometheus.Counter
	ratingsRejected  *prometheus.CounterVec
	ratingsTotal     prometheus.Gauge

	// Datasets
	playersLoaded      prometheus.Gauge
	datasetLoads       *prometheus.CounterVec
	datasetCacheHits   prometheus.Counter
	datasetCacheMisses prometheus.Counter

	// Queries and exports
	filterLatency     prometheus.Histogram
	leaderboardBuilds prometheus.Counter
	reportsExported   *prometheus.CounterVec

	// Storage
	storageLatency *prometheus.HistogramVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
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
		namespace:        "scout",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // one block per metric
	auto := promauto.With(m.registry)

	m.ratingsSubmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ratings_submitted_total",
		Help:      "Total number of ratings stored",
	})

	m.ratingsRejected = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "ratings_rejected_total",
			Help:      "Total number of rating submissions rejected, by reason",
		},
		[]string{"reason"},
	)

	m.ratingsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ratings_stored",
		Help:      "Number of ratings in the ratings store",
	})

	m.playersLoaded = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_loaded",
		Help:      "Number of player rows in the selected dataset",
	})

	m.datasetLoads = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "dataset_loads_total",
			Help:      "Total number of dataset loads by result",
		},
		[]string{"result"},
	)

	m.datasetCacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_cache_hits_total",
		Help:      "Dataset loads served from the memo",
	})

	m.datasetCacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_cache_misses_total",
		Help:      "Dataset loads that had to read the file",
	})

	m.filterLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "filter_latency_milliseconds",
		Help:      "Time spent applying filter criteria in milliseconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100},
	})

	m.leaderboardBuilds = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_builds_total",
		Help:      "Total number of leaderboards computed",
	})

	m.reportsExported = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "reports_exported_total",
			Help:      "Total number of PDF report exports by result",
		},
		[]string{"result"},
	)

	m.storageLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "storage_latency_milliseconds",
			Help:      "Ratings store operation latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"operation", "result"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component",
		},
		[]string{"component", "error_type"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of errors by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordRatingSubmitted increments the stored ratings counter.
func RecordRatingSubmitted() {
	globalManager.ratingsSubmitted.Inc()
}

// RecordRatingRejected increments the rejected ratings counter for reason.
func RecordRatingRejected(reason string) {
	globalManager.ratingsRejected.WithLabelValues(reason).Inc()
}

// UpdateRatingsTotal sets the number of stored ratings.
func UpdateRatingsTotal(count int) {
	globalManager.ratingsTotal.Set(float64(count))
}

// UpdatePlayersLoaded sets the number of rows in the selected dataset.
func UpdatePlayersLoaded(count int) {
	globalManager.playersLoaded.Set(float64(count))
}

// RecordDatasetLoad records a dataset load with its result.
func RecordDatasetLoad(result string) {
	globalManager.datasetLoads.WithLabelValues(result).Inc()
}

// RecordDatasetCacheHit increments the dataset memo hit counter.
func RecordDatasetCacheHit() {
	globalManager.datasetCacheHits.Inc()
}

// RecordDatasetCacheMiss increments the dataset memo miss counter.
func RecordDatasetCacheMiss() {
	globalManager.datasetCacheMisses.Inc()
}

// RecordFilterLatency records filter latency in milliseconds.
func RecordFilterLatency(latencyMs float64) {
	globalManager.filterLatency.Observe(latencyMs)
}

// RecordLeaderboardBuild increments the leaderboard computation counter.
func RecordLeaderboardBuild() {
	globalManager.leaderboardBuilds.Inc()
}

// RecordReportExport records a PDF export with its result.
func RecordReportExport(result string) {
	globalManager.reportsExported.WithLabelValues(result).Inc()
}

// RecordStorageLatency records a ratings store operation.
func RecordStorageLatency(operation, result string, latencyMs float64) {
	globalManager.storageLatency.WithLabelValues(operation, result).Observe(latencyMs)
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
