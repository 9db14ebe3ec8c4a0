package config

import (
	"fmt"
	"time"

	"aoc2023/internal/puzzle"
)

// SolveConfig tunes solver execution.
type SolveConfig struct {
	// Workers bounds the goroutines used by brute-force range scans.
	Workers int `yaml:"workers"`

	// RangeStrategy is "interval" or "brute".
	RangeStrategy string `yaml:"range_strategy"`

	// CheckSamples runs the worked examples before the real input.
	CheckSamples bool `yaml:"check_samples"`

	// SlowThreshold logs a warning when a part takes longer.
	SlowThreshold string `yaml:"slow_threshold"`
}

func (s SolveConfig) validate() error {
	if s.Workers <= 0 {
		return fmt.Errorf("solve.workers must be positive, got %d", s.Workers)
	}
	switch s.RangeStrategy {
	case puzzle.StrategyInterval, puzzle.StrategyBrute:
	default:
		return fmt.Errorf("invalid solve.range_strategy %q (want %s or %s)",
			s.RangeStrategy, puzzle.StrategyInterval, puzzle.StrategyBrute)
	}
	return nil
}

// Options converts the config into solver options.
func (s SolveConfig) Options() puzzle.Options {
	return puzzle.Options{Workers: s.Workers, RangeStrategy: s.RangeStrategy}
}

// GetSlowThreshold returns the slow-solve threshold as a duration.
func (s SolveConfig) GetSlowThreshold() time.Duration {
	d, err := time.ParseDuration(s.SlowThreshold)
	if err != nil {
		return 2 * time.Second
	}
	return d
}
