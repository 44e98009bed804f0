package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"static-server/internal/startup"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

// HealthResponse contains the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Ready   bool   `json:"ready"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
	Error   string `json:"error,omitempty"`

	// System info
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`

	// Content root
	StaticDir string `json:"staticDir"`
}

// HealthCheck returns the health status of the service
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	ready, reason := h.staticRootReadable()

	response := HealthResponse{
		Ready:        ready,
		Version:      startup.Version,
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
		StaticDir:    h.staticDir,
	}

	if ready {
		response.Status = statusHealthy
	} else {
		response.Status = statusDegraded
		response.Error = reason
	}

	w.Header().Set("Content-Type", "application/json")

	// Return 503 when the content root is gone so orchestrators stop
	// routing traffic here
	if !ready {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	writeJSON(w, response)
}

// LivenessCheck is a simple liveness probe (always returns 200 if server is running)
func (h *Handlers) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	// For HEAD requests, only send headers (no body)
	if r.Method != http.MethodHead {
		writeJSONStatus(w, "alive")
	}
}

// ReadinessCheck returns 200 only when the static root can still be served
func (h *Handlers) ReadinessCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if ready, _ := h.staticRootReadable(); ready {
		w.WriteHeader(http.StatusOK)
		writeJSONStatus(w, "ready")
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		writeJSONStatus(w, "not_ready")
	}
}

// staticRootReadable verifies the static root still exists and is a
// directory. The root is validated at startup but can disappear from
// underneath a running server when a volume is unmounted or a bind
// mount is recreated.
func (h *Handlers) staticRootReadable() (bool, string) {
	info, err := os.Stat(h.staticDir)
	if err != nil {
		return false, err.Error()
	}
	if !info.IsDir() {
		return false, "static root is not a directory"
	}
	return true, ""
}
