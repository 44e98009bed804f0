// Package logging provides a simple leveled logging interface for the
// static file server.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information, including per-request access records
//   - INFO: General operational messages
//   - WARN: Warning conditions
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the application
//
// The log level is configured via the LOG_LEVEL environment variable and
// defaults to debug so that access records are visible out of the box.
package logging
