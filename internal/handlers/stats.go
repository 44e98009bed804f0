package handlers

import (
	"io/fs"
	"path/filepath"

	"static-server/internal/logging"
	"static-server/internal/metrics"
)

// GetStats walks the static root and returns content totals for the
// metrics collector. Unreadable entries are skipped rather than
// aborting the walk, so the totals can undercount on a degraded mount.
func (h *Handlers) GetStats() metrics.Stats {
	var stats metrics.Stats

	root := h.staticDir
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logging.Debug("Content stats: skipping %s: %v", path, err)
			return nil
		}

		if d.IsDir() {
			if path != root {
				stats.TotalDirs++
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			logging.Debug("Content stats: skipping %s: %v", path, err)
			return nil
		}

		stats.TotalFiles++
		stats.TotalBytes += info.Size()
		return nil
	})
	if walkErr != nil {
		logging.Warn("Content stats walk failed for %s: %v", root, walkErr)
	}

	return stats
}
