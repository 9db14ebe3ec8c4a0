package config

import "time"

// WatchConfig configures the input watcher.
type WatchConfig struct {
	// Debounce collapses bursts of writes from editors.
	Debounce string `yaml:"debounce"`
}

// GetDebounce returns the debounce window as a duration.
func (w WatchConfig) GetDebounce() time.Duration {
	d, err := time.ParseDuration(w.Debounce)
	if err != nil || d <= 0 {
		return 300 * time.Millisecond
	}
	return d
}
