package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "static_server_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "static_server_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "static_server_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// File serving metrics
var (
	FilesServedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "static_server_files_served_total",
			Help: "Total number of files served by Content-Type",
		},
		[]string{"type"},
	)

	FileBytesReadTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "static_server_file_bytes_read_total",
			Help: "Total number of file bytes read from the static root",
		},
	)

	FileReadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "static_server_file_read_duration_seconds",
			Help:    "File read duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	FilesNotFoundTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "static_server_files_not_found_total",
			Help: "Total number of requests for paths that did not resolve to a file",
		},
	)

	FileReadErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "static_server_file_read_errors_total",
			Help: "Total number of file reads that failed after the path resolved",
		},
	)
)

// Filesystem retry metrics
var (
	FilesystemStaleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "static_server_fs_stale_errors_total",
			Help: "Total number of stale file handle errors observed",
		},
		[]string{"operation"},
	)

	FilesystemRetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "static_server_fs_retry_attempts_total",
			Help: "Total number of filesystem operation retries after stale handle errors",
		},
		[]string{"operation"},
	)

	FilesystemRetrySuccess = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "static_server_fs_retry_success_total",
			Help: "Total number of filesystem operations that succeeded on a retry",
		},
		[]string{"operation"},
	)

	FilesystemRetryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "static_server_fs_retry_failures_total",
			Help: "Total number of filesystem operations that exhausted their retries",
		},
		[]string{"operation"},
	)
)

// Request body metrics
var (
	RequestBodyBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "static_server_request_body_bytes_total",
			Help: "Total number of request body bytes buffered by the access logger",
		},
	)

	RequestBodyDecodeErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "static_server_request_body_decode_errors_total",
			Help: "Total number of request bodies rejected as invalid UTF-8",
		},
	)
)

// Static content metrics
var (
	ContentFilesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "static_server_content_files_total",
			Help: "Total number of files under the static root",
		},
	)

	ContentDirsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "static_server_content_directories_total",
			Help: "Total number of directories under the static root",
		},
	)

	ContentSizeBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "static_server_content_size_bytes",
			Help: "Total size of the static root in bytes",
		},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "static_server_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}
