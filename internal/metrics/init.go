package metrics

import "static-server/internal/mimetypes"

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	// --- Files served by Content-Type (the registry bounds the label set) ---
	seen := make(map[string]bool)
	for _, mimeType := range mimetypes.MimeTypes {
		if seen[mimeType] {
			continue
		}
		seen[mimeType] = true
		FilesServedTotal.WithLabelValues(mimeType)
	}
	if !seen[mimetypes.FallbackType] {
		FilesServedTotal.WithLabelValues(mimetypes.FallbackType)
	}

	// --- HTTP series for the fixed routes and the static catch-all ---
	paths := []string{"/healthz", "/livez", "/readyz", "/version", "/{path}"}
	statuses := []string{"200", "400", "404", "500", "503"}

	for _, p := range paths {
		HTTPRequestDuration.WithLabelValues("GET", p)
		for _, s := range statuses {
			HTTPRequestsTotal.WithLabelValues("GET", p, s)
		}
	}
}
