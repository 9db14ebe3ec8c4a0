package config

// StoreConfig configures the SQLite answer journal.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}
