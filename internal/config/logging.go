package config

import "aoc2023/internal/logging"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file"`   // empty logs to stderr
}

// Options converts the config for logging.Initialize.
func (l LoggingConfig) Options() logging.Options {
	return logging.Options{Level: l.Level, Format: l.Format, File: l.File}
}
