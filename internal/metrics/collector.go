package metrics

import (
	"time"

	"static-server/internal/logging"
)

// StatsProvider interface for collecting static root stats
type StatsProvider interface {
	GetStats() Stats
}

// Stats holds a snapshot of the static root contents
type Stats struct {
	TotalFiles int
	TotalDirs  int
	TotalBytes int64
}

// Collector periodically collects and updates static content metrics
type Collector struct {
	statsProvider StatsProvider
	interval      time.Duration
	stopChan      chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(provider StatsProvider, interval time.Duration) *Collector {
	return &Collector{
		statsProvider: provider,
		interval:      interval,
		stopChan:      make(chan struct{}),
	}
}

// Start begins the metrics collection loop
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the metrics collection
func (c *Collector) Stop() {
	close(c.stopChan)
}

func (c *Collector) collectLoop() {
	// Collect immediately on start
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	if c.statsProvider == nil {
		return
	}

	stats := c.statsProvider.GetStats()

	ContentFilesTotal.Set(float64(stats.TotalFiles))
	ContentDirsTotal.Set(float64(stats.TotalDirs))
	ContentSizeBytes.Set(float64(stats.TotalBytes))

	logging.Debug("Metrics collected: files=%d, dirs=%d, bytes=%d",
		stats.TotalFiles, stats.TotalDirs, stats.TotalBytes)
}
