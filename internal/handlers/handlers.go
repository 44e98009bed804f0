package handlers

import (
	"time"

	"static-server/internal/filesystem"
	"static-server/internal/startup"
)

type Handlers struct {
	staticDir string
	startTime time.Time
	retry     filesystem.RetryConfig
}

func New(config *startup.Config) *Handlers {
	return &Handlers{
		staticDir: config.StaticDir,
		startTime: time.Now(),
		retry:     filesystem.DefaultRetryConfig(),
	}
}
