// Package metrics provides Prometheus instrumentation for the static file server.
//
// This package defines and exposes various metrics that can be scraped by Prometheus
// to monitor the health, performance, and behavior of the server. All metrics
// are prefixed with "static_server_" to avoid naming collisions with other applications.
//
// # Metric Categories
//
// ## HTTP Metrics
//
// Track HTTP request performance and error rates:
//   - HTTPRequestsTotal: Counter of total requests by method, path, and status
//   - HTTPRequestDuration: Histogram of request duration by method and path
//   - HTTPRequestsInFlight: Gauge of currently processing requests
//
// ## File Serving Metrics
//
// Monitor the file responder:
//   - FilesServedTotal: Counter of files served by Content-Type
//   - FileBytesReadTotal: Counter of file bytes read from the static root
//   - FileReadDuration: Histogram of file read duration
//   - FilesNotFoundTotal: Counter of requests that resolved to no file
//   - FileReadErrorsTotal: Counter of reads that failed after the path resolved
//
// ## Request Body Metrics
//
// Track the access logger's body buffering:
//   - RequestBodyBytesTotal: Counter of buffered request body bytes
//   - RequestBodyDecodeErrorsTotal: Counter of bodies rejected as invalid UTF-8
//
// ## Filesystem Retry Metrics
//
// Track stale NFS handle recovery, labeled by operation (stat or read):
//   - FilesystemStaleErrors: Counter of ESTALE errors encountered
//   - FilesystemRetryAttempts: Counter of retry attempts
//   - FilesystemRetrySuccess: Counter of operations that succeeded on retry
//   - FilesystemRetryFailures: Counter of operations that exhausted retries
//
// ## Static Content Metrics
//
// Describe the served tree, updated periodically by the [Collector]:
//   - ContentFilesTotal: Gauge of files under the static root
//   - ContentDirsTotal: Gauge of directories under the static root
//   - ContentSizeBytes: Gauge of the static root's total size
//
// ## Application Info
//
// Expose build information:
//   - AppInfo: Gauge with version, commit, and Go version labels
//
// # Usage
//
// Metrics are automatically registered with the default Prometheus registry
// using promauto. To expose them, mount the promhttp.Handler() on your
// metrics endpoint:
//
//	import "github.com/prometheus/client_golang/prometheus/promhttp"
//
//	mux.Handle("/metrics", promhttp.Handler())
//
// # Recording Metrics
//
// To record metrics from other packages, import this package and use the
// exported metric variables:
//
//	import "static-server/internal/metrics"
//
//	// Increment a counter
//	metrics.HTTPRequestsTotal.WithLabelValues("GET", "/{path}", "200").Inc()
//
//	// Observe a histogram value
//	metrics.HTTPRequestDuration.WithLabelValues("GET", "/{path}").Observe(0.123)
//
// # Collector
//
// The package provides a [Collector] type that periodically gathers
// statistics from a [StatsProvider] and updates the static content gauges:
//
//	collector := metrics.NewCollector(statsProvider, 5*time.Minute)
//	collector.Start()
//	defer collector.Stop()
//
// # Prometheus Queries
//
// Example PromQL queries for common use cases:
//
// Request rate by endpoint:
//
//	sum(rate(static_server_http_requests_total[5m])) by (path)
//
// P95 response time:
//
//	histogram_quantile(0.95, sum(rate(static_server_http_request_duration_seconds_bucket[5m])) by (le))
//
// Miss rate (share of requests that found no file):
//
//	rate(static_server_files_not_found_total[5m]) /
//	sum(rate(static_server_http_requests_total{path="/{path}"}[5m]))
//
// Served bandwidth:
//
//	rate(static_server_file_bytes_read_total[5m])
package metrics
