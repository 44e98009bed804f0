package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"static-server/internal/filesystem"
	"static-server/internal/logging"
	"static-server/internal/metrics"
	"static-server/internal/mimetypes"
)

// indexFile is substituted when a request path resolves to nothing.
const indexFile = "index.html"

// ServeStatic maps the request path to a file under the static root and
// writes the whole file back with a Content-Type inferred from its
// extension.
//
// Resolution: one leading slash is stripped, an empty remainder becomes
// index.html, and the result is joined onto the static root. A path
// that escapes the root after cleaning is answered exactly like an
// absent file: 404 with an empty body. Read failures, including paths
// that name something other than a regular file, are answered with 500
// and an empty body.
func (h *Handlers) ServeStatic(w http.ResponseWriter, r *http.Request) {
	relPath := strings.TrimPrefix(r.URL.Path, "/")
	if relPath == "" {
		relPath = indexFile
	}

	mimeType := mimetypes.GetMimeType(strings.ToLower(filepath.Ext(relPath)))

	fullPath := filepath.Join(h.staticDir, relPath)

	absPath, err := filepath.Abs(fullPath)
	if err != nil || !insideRoot(h.staticDir, absPath) {
		logging.Warn("Rejected path outside static root: %s", r.URL.Path)
		metrics.FilesNotFoundTotal.Inc()
		w.WriteHeader(http.StatusNotFound)
		return
	}

	info, err := filesystem.StatWithRetry(absPath, h.retry)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("File not found: %s", relPath)
			metrics.FilesNotFoundTotal.Inc()
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logging.Error("Failed to stat %s: %v", relPath, err)
		metrics.FileReadErrorsTotal.Inc()
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !info.Mode().IsRegular() {
		logging.Warn("Not a regular file: %s", relPath)
		metrics.FileReadErrorsTotal.Inc()
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	start := time.Now()
	data, err := filesystem.ReadFileWithRetry(absPath, h.retry)
	if err != nil {
		// Includes the race where the file vanishes between stat and read
		logging.Error("Failed to read %s: %v", relPath, err)
		metrics.FileReadErrorsTotal.Inc()
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	metrics.FileReadDuration.Observe(time.Since(start).Seconds())
	metrics.FileBytesReadTotal.Add(float64(len(data)))
	metrics.FilesServedTotal.WithLabelValues(mimeType).Inc()

	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.Error("Failed to write response for %s: %v", relPath, err)
	}
}

// insideRoot reports whether candidate is the root itself or a path
// under it. The comparison is segment-aware so a sibling directory
// whose name shares the root as a string prefix does not pass.
func insideRoot(root, candidate string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	if candidate == absRoot {
		return true
	}
	return strings.HasPrefix(candidate, absRoot+string(filepath.Separator))
}
