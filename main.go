package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"static-server/internal/handlers"
	"static-server/internal/logging"
	"static-server/internal/memory"
	"static-server/internal/metrics"
	"static-server/internal/middleware"
	"static-server/internal/mimetypes"
	"static-server/internal/startup"

	"github.com/gorilla/mux"
)

func main() {
	startTime := time.Now()

	// Load configuration
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	// Configure the Go memory limit before the server starts allocating
	startup.LogMemoryConfig(memory.ConfigureFromEnv())

	// Apply MIME type overrides
	if config.MimeTypesFile != "" {
		applied, err := mimetypes.LoadOverrides(config.MimeTypesFile)
		if err != nil {
			startup.LogFatal("Failed to load MIME type overrides: %v", err)
		}
		startup.LogMimeTypesInit(applied, config.MimeTypesFile)
	}

	// Initialize metrics
	metrics.InitializeMetrics()
	build := startup.GetBuildInfo()
	metrics.SetAppInfo(build.Version, build.Commit, build.GoVersion)

	// Initialize handlers
	h := handlers.New(config)

	// Collect content statistics in the background
	collector := metrics.NewCollector(h, 1*time.Minute)
	collector.Start()

	// Setup router
	router := setupRouter(h)

	// Log routes dynamically
	startup.LogHTTPRoutes(router)

	// Apply metrics middleware, then access logging outermost
	handler := middleware.Logger(middleware.Metrics(middleware.DefaultMetricsConfig())(router))

	// Create server
	srv := &http.Server{
		Addr:         net.JoinHostPort(config.Host, config.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// The metrics listener runs on its own port, outside the middleware
	// chain, so scrapes never show up in access logs or request metrics.
	var metricsSrv *http.Server
	if config.MetricsEnabled {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", h.MetricsHandler())
		metricsSrv = &http.Server{
			Addr:         net.JoinHostPort(config.Host, config.MetricsPort),
			Handler:      metricsMux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != http.ErrServerClosed {
				logging.Error("Metrics server error: %v", err)
			}
		}()
	}

	// Start graceful shutdown handler
	done := make(chan struct{})
	go handleShutdown(srv, metricsSrv, collector, done)

	// Start server
	startup.LogServerStarted(startup.ServerConfig{
		Host:            config.Host,
		Port:            config.Port,
		MetricsPort:     config.MetricsPort,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		startup.LogFatal("Server error: %v", err)
	}

	// Wait for the shutdown handler to finish its teardown steps
	<-done
}

func setupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()

	// Path cleaning happens in the file resolver, not the router. Without
	// this, mux would 301-redirect paths like //style.css before the
	// resolver ever saw them.
	r.SkipClean(true)

	// Health check and version routes. /livez takes HEAD as well so
	// pollers can probe connectivity without a body.
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	r.HandleFunc("/readyz", h.ReadinessCheck).Methods("GET")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	// Static files
	r.PathPrefix("/").HandlerFunc(h.ServeStatic).Methods("GET")

	return r
}

// handleShutdown drains the listeners and stops the collector when the
// process receives SIGINT or SIGTERM. metricsSrv is nil when the metrics
// listener is disabled. done is closed once teardown has finished.
func handleShutdown(srv, metricsSrv *http.Server, collector *metrics.Collector, done chan struct{}) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	startup.LogShutdownStep("Stopping metrics collector")
	collector.Stop()
	startup.LogShutdownStepComplete("Metrics collector stopped")

	if metricsSrv != nil {
		startup.LogShutdownStep("Shutting down metrics server")
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logging.Warn("Metrics server shutdown error: %v", err)
		} else {
			startup.LogShutdownStepComplete("Metrics server stopped")
		}
	}

	startup.LogShutdownStep("Shutting down HTTP server")
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	startup.LogShutdownComplete()
	close(done)
}
