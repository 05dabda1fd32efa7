package app

import (
	"github.com/guttosm/load-planner/config"
	"github.com/guttosm/load-planner/internal/logger"
)

// InitializeLogger configures the global zerolog logger.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
