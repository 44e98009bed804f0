/*
Package filesystem provides resilient filesystem operations with automatic retry logic
for NFS stale file handle errors.

# Purpose

This package wraps standard filesystem operations (os.Stat, os.ReadFile) with retry
logic specifically designed to handle transient NFS failures, particularly ESTALE
(stale file handle) errors that occur when the static root lives on an NFS or other
network mount and the export is changed underneath the server.

# Key Features

  - Automatic retry with exponential backoff for NFS ESTALE errors (errno 116)
  - Configurable retry attempts (default: 3) and backoff timings
  - Immediate passthrough of all non-NFS errors
  - Retry counters exposed as Prometheus metrics per operation

# Usage

Basic usage with default retry configuration:

	import "static-server/internal/filesystem"

	// Stat a file with automatic NFS retry
	info, err := filesystem.StatWithRetry("/srv/static/index.html", filesystem.DefaultRetryConfig())
	if err != nil {
	    log.Fatal(err)
	}

	// Read a whole file with automatic NFS retry
	data, err := filesystem.ReadFileWithRetry("/srv/static/index.html", filesystem.DefaultRetryConfig())
	if err != nil {
	    log.Fatal(err)
	}

Custom retry configuration:

	config := filesystem.RetryConfig{
	    MaxRetries:     5,
	    InitialBackoff: 100 * time.Millisecond,
	    MaxBackoff:     1 * time.Second,
	}
	info, err := filesystem.StatWithRetry(path, config)

# Retry Behavior

The retry logic implements exponential backoff with the following defaults:
  - MaxRetries: 3 attempts
  - InitialBackoff: 50ms
  - MaxBackoff: 500ms

Only NFS stale file handle errors (ESTALE) trigger retries. All other errors
fail immediately without retry attempts, so missing files and permission
problems surface at their normal speed.

# Integration

The static file handler uses this package for the stat and read on every
request, which keeps one flaky remount from turning into a stream of 500s.
*/
package filesystem
