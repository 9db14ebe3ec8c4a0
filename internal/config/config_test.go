package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/puzzle"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "inputs", cfg.Inputs.Dir)
	assert.Equal(t, 4, cfg.Solve.Workers)
	assert.Equal(t, puzzle.StrategyInterval, cfg.Solve.RangeStrategy)
	assert.True(t, cfg.Store.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "aoc.yaml")

	cfg := DefaultConfig()
	cfg.Solve.Workers = 12
	cfg.Solve.RangeStrategy = puzzle.StrategyBrute
	cfg.Store.Enabled = false
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solve:\n  workers: 2\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Solve.Workers)
	assert.Equal(t, puzzle.StrategyInterval, cfg.Solve.RangeStrategy)
	assert.Equal(t, "inputs", cfg.Inputs.Dir)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":     "solve: [",
		"bad strategy": "solve:\n  range_strategy: clever\n",
		"zero workers": "solve:\n  workers: 0\n",
		"bad debounce": "watch:\n  debounce: soon\n",
		"bad format":   "logging:\n  format: xml\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "aoc.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestDurationGetters(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 300*time.Millisecond, cfg.Watch.GetDebounce())
	assert.Equal(t, 2*time.Second, cfg.Solve.GetSlowThreshold())

	cfg.Watch.Debounce = "garbage"
	cfg.Solve.SlowThreshold = "garbage"
	assert.Equal(t, 300*time.Millisecond, cfg.Watch.GetDebounce())
	assert.Equal(t, 2*time.Second, cfg.Solve.GetSlowThreshold())
}

func TestInputPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Inputs.Dir = "/data"
	assert.Equal(t, filepath.Join("/data", "5.input"), cfg.InputPath(5))
}

func TestOptionsConversion(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, puzzle.Options{Workers: 4, RangeStrategy: "interval"}, cfg.Solve.Options())
	assert.Equal(t, "info", cfg.Logging.Options().Level)
}
