package main

import (
	"errors"
	"flag"
	"fmt"
)

// Window defaults
const (
	WindowTitle   = "Langton's Ant"
	WindowWidth   = 800
	WindowHeight  = 450
	DefaultFPS    = 120
	DefaultPixels = 40.0
)

// Config holds everything main needs to start a run.
type Config struct {
	Width      int
	Height     int
	FPS        int
	Speed      int
	PixelWidth float64
	Paused     bool

	// Initial pattern; Density 0 leaves the grid empty
	Seed    uint64
	Radius  int
	Density float64

	// Headless runs Steps generations without opening a window
	Steps     int
	StatsFile string
	HelpKeys  bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:      WindowWidth,
		Height:     WindowHeight,
		FPS:        DefaultFPS,
		Speed:      1,
		PixelWidth: DefaultPixels,
		Paused:     true,
		Radius:     10,
	}
}

// RegisterFlags binds the config fields to fs.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "Window height in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "Frame rate cap")
	fs.IntVar(&c.Speed, "speed", c.Speed, "Steps per frame (minimum 1)")
	fs.Float64Var(&c.PixelWidth, "pixel", c.PixelWidth, "Initial cell width in pixels (minimum 0.1)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "Start paused")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Seed for the initial random pattern")
	fs.IntVar(&c.Radius, "radius", c.Radius, "Half side of the square seeded with the random pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "Probability that a seeded cell starts on (0 disables seeding)")
	fs.IntVar(&c.Steps, "steps", c.Steps, "Run this many steps without a window, print the result and exit")
	fs.StringVar(&c.StatsFile, "stats", c.StatsFile, "Write a JSON run summary to this file on exit")
	fs.BoolVar(&c.HelpKeys, "help-keys", c.HelpKeys, "Print the key bindings and exit")
}

var errInvalidConfig = errors.New("invalid config")

// Validate rejects settings no run can start with. Speed and pixel width are
// clamped later instead of rejected.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", errInvalidConfig, c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", errInvalidConfig, c.FPS)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: steps %d", errInvalidConfig, c.Steps)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density %v outside [0, 1]", errInvalidConfig, c.Density)
	}
	return nil
}
