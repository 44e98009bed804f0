// Package mimetypes maps file extensions to the Content-Type values the
// server emits.
//
// The registry is a curated table covering the common web asset set. Lookups
// fall back to "text/plain" for unrecognized extensions, so every successful
// response carries a definite Content-Type.
//
// # Extension Lookup
//
// Use GetMimeType with a lowercase extension including the leading dot:
//
//	ext := strings.ToLower(filepath.Ext(name))
//	contentType := mimetypes.GetMimeType(ext) // e.g. "text/css"
//
// # Overrides
//
// Operators can extend or replace entries with a TOML file of ext = "type"
// pairs, applied once at startup:
//
//	mjml = "text/mjml"
//	".geojson" = "application/geo+json"
//
//	n, err := mimetypes.LoadOverrides(cfg.MimeTypesFile)
//
// The registry is a plain map with no locking; LoadOverrides must run before
// the server starts serving requests.
package mimetypes
