// Package main provides the entry point for the static file server.
//
// The server maps request paths onto files under a configured root directory
// and answers each request with the whole file, a Content-Type derived from
// the file extension, and a structured access log record. It is intended to
// sit behind a reverse proxy or inside a container, serving a single
// directory tree.
//
// # Application Lifecycle
//
// The application follows a structured initialization sequence:
//
//  1. Configuration Loading: Reads environment variables and validates the
//     static root directory
//  2. Memory Configuration: Sets GOMEMLIMIT from environment or cgroup limits
//  3. MIME Overrides: Applies extension mappings from MIME_TYPES_FILE
//  4. Metrics Initialization: Registers Prometheus collectors and build info
//  5. HTTP Server Setup: Configures routes, middleware, and starts servers
//  6. Graceful Shutdown: Handles SIGINT/SIGTERM, stops all components cleanly
//
// # Request Handling
//
// Every request to the main server passes through the same pipeline:
//
//  1. Access logging middleware buffers the request body, rejects bodies
//     that are not valid UTF-8, and replays the bytes downstream
//  2. Metrics middleware records request counts, durations, and in-flight
//     gauges with bounded label cardinality
//  3. The router dispatches operational endpoints by exact path and sends
//     everything else to the static file handler
//
// The file handler strips one leading slash from the request path, treats an
// empty remainder as index.html, and joins the result onto the static root.
// Paths that resolve outside the root are answered like missing files. One
// JSON access record is emitted per request at debug level, after the
// response status is known.
//
// # HTTP Server
//
// The application runs two HTTP servers:
//
//  1. Main Server (default 127.0.0.1:3000):
//     - Static file serving for all unreserved paths
//     - Health endpoints: /healthz, /livez, /readyz
//     - Version endpoint: /version
//
//  2. Metrics Server (default port 9090, optional):
//     - Prometheus metrics endpoint (/metrics)
//     - Runs outside the middleware chain, so scrapes are never logged
//
// # Environment Variables
//
// Configuration is entirely through environment variables:
//
//   - STATIC_DIR: Root directory containing files to serve (required)
//   - HOST: Bind address for both servers (default: 127.0.0.1)
//   - PORT: Main HTTP server port (default: 3000)
//   - METRICS_PORT: Metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable metrics server (default: true)
//   - MIME_TYPES_FILE: TOML file with extension-to-MIME overrides
//   - LOG_LEVEL: Logging level (debug/info/warn/error, default: debug)
//   - MEMORY_LIMIT: Memory limit override (e.g. 512MiB)
//   - MEMORY_RATIO: Fraction of the detected limit to use (default: 0.85)
//   - GOMEMLIMIT: Standard Go memory limit (respected if already set)
//
// # Graceful Shutdown
//
// The application handles SIGINT and SIGTERM signals gracefully:
//
//  1. Stop the metrics collector
//  2. Shutdown the metrics server (if running)
//  3. Shutdown the main HTTP server (30s timeout)
//
// In-flight requests are given the full shutdown timeout to complete.
//
// # Build
//
// Version information is injected at build time:
//
//	go build -ldflags "\
//	  -X static-server/internal/startup.Version=1.0.0 \
//	  -X static-server/internal/startup.Commit=$(git rev-parse --short HEAD) \
//	  -X static-server/internal/startup.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// # Related Packages
//
//   - [static-server/internal/handlers]: HTTP request handlers
//   - [static-server/internal/middleware]: Access logging and metrics middleware
//   - [static-server/internal/mimetypes]: Extension-to-MIME resolution
//   - [static-server/internal/startup]: Configuration and initialization
//   - [static-server/internal/metrics]: Prometheus metric definitions
//   - [static-server/internal/memory]: Container-aware GOMEMLIMIT setup
//   - [static-server/internal/logging]: Leveled logging
package main
