package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Flags(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)

	err := fs.Parse([]string{"-speed", "5", "-seed", "42", "-density", "0.25", "-paused=false", "-steps", "10"})
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Speed)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 0.25, cfg.Density)
	assert.False(t, cfg.Paused)
	assert.Equal(t, 10, cfg.Steps)
	assert.Equal(t, WindowWidth, cfg.Width)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Height = -1 }, false},
		{"zero fps", func(c *Config) { c.FPS = 0 }, false},
		{"negative steps", func(c *Config) { c.Steps = -1 }, false},
		{"density above one", func(c *Config) { c.Density = 1.5 }, false},
		// clamped later rather than rejected
		{"zero speed", func(c *Config) { c.Speed = 0 }, true},
		{"tiny pixel width", func(c *Config) { c.PixelWidth = 0.001 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errInvalidConfig)
			}
		})
	}
}

func TestRun_HeadlessWritesStats(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Steps = 10000
	cfg.StatsFile = filepath.Join(t.TempDir(), "stats.json")

	require.NoError(t, run(cfg))

	data, err := os.ReadFile(cfg.StatsFile)
	require.NoError(t, err)

	var stats struct {
		UUID       string `json:"uuid"`
		Generation int    `json:"generation"`
		OnCells    int    `json:"on_cells"`
	}
	require.NoError(t, json.Unmarshal(data, &stats))
	assert.NotEmpty(t, stats.UUID)
	assert.Equal(t, 10001, stats.Generation)
	assert.Equal(t, 720, stats.OnCells)
}

func TestRun_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FPS = -1
	assert.ErrorIs(t, run(cfg), errInvalidConfig)
}
