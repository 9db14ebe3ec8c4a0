package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all aoc configuration.
type Config struct {
	// Puzzle inputs
	Inputs InputsConfig `yaml:"inputs"`

	// Solver tuning
	Solve SolveConfig `yaml:"solve"`

	// Answer journal
	Store StoreConfig `yaml:"store"`

	// Input watcher
	Watch WatchConfig `yaml:"watch"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// InputsConfig locates puzzle inputs.
type InputsConfig struct {
	// Dir holds one "<day>.input" file per day.
	Dir string `yaml:"dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Inputs: InputsConfig{
			Dir: "inputs",
		},
		Solve: SolveConfig{
			Workers:       4,
			RangeStrategy: "interval",
			CheckSamples:  true,
			SlowThreshold: "2s",
		},
		Store: StoreConfig{
			Enabled: true,
			Path:    ".aoc/answers.db",
		},
		Watch: WatchConfig{
			Debounce: "300ms",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults when the file doesn't exist
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if dir := os.Getenv("AOC_INPUT_DIR"); dir != "" {
		c.Inputs.Dir = dir
	}
	if w := os.Getenv("AOC_WORKERS"); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil {
			return fmt.Errorf("invalid AOC_WORKERS %q: %w", w, err)
		}
		c.Solve.Workers = n
	}
	if s := os.Getenv("AOC_RANGE_STRATEGY"); s != "" {
		c.Solve.RangeStrategy = s
	}
	if path := os.Getenv("AOC_DB"); path != "" {
		c.Store.Path = path
	}
	if level := os.Getenv("AOC_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	return nil
}

// Validate rejects settings the solvers cannot run with.
func (c *Config) Validate() error {
	if err := c.Solve.validate(); err != nil {
		return err
	}
	if _, err := time.ParseDuration(c.Watch.Debounce); c.Watch.Debounce != "" && err != nil {
		return fmt.Errorf("invalid watch.debounce %q: %w", c.Watch.Debounce, err)
	}
	if _, err := time.ParseDuration(c.Solve.SlowThreshold); c.Solve.SlowThreshold != "" && err != nil {
		return fmt.Errorf("invalid solve.slow_threshold %q: %w", c.Solve.SlowThreshold, err)
	}
	switch c.Logging.Format {
	case "", "json", "console", "text":
	default:
		return fmt.Errorf("invalid logging.format %q (want json or console)", c.Logging.Format)
	}
	return nil
}

// InputPath returns the default input file for a day.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.Inputs.Dir, fmt.Sprintf("%d.input", day))
}
