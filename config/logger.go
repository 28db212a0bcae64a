package config

import "deep-summarizer/logger"

// InitLogger configures the global logger from logging.level.
func InitLogger() {
	logger.Init(GetConfig().Logging.Level)
}
