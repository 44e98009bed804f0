// Package middleware provides HTTP middleware for the static file server.
//
// It includes:
//   - Access logging that emits one JSON record per request at debug level
//   - Request body buffering with UTF-8 validation and replay
//   - Prometheus request metrics with bounded label cardinality
package middleware
