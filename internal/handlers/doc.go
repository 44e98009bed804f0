// Package handlers provides HTTP request handlers for the static file server.
//
// It includes handlers for:
//   - Static file serving with extension-based content types
//   - Health, liveness, and readiness checks
//   - Version and build information
//   - Prometheus metrics exposition
//   - Content statistics for the metrics collector
package handlers
