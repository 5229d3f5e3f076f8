// Package config loads the optional JSON settings file and merges CLI
// flag overrides and defaults on top.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/playback"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/sequence"
)

// Config holds all configurable paths, render and engine settings.
type Config struct {
	// Paths
	Cartridge string `json:"cartridge"`
	OutputDir string `json:"output_dir"`

	// Render settings
	RenderSize  int     `json:"render_size"`
	Supersample int     `json:"supersample"`
	StrokeWidth float64 `json:"stroke_width"`
	Workers     int     `json:"workers"`

	// Engine settings
	FPS       float64 `json:"fps"`
	MaxFrames int     `json:"max_frames"`
	Threshold float64 `json:"record_threshold"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Cartridge string
	OutputDir string
	Size      int
	Workers   int
	FPS       float64
}

// Resolve fills in any empty fields with defaults. CLI flags take
// priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Cartridge != "" {
		c.Cartridge = flags.Cartridge
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}

	if c.OutputDir == "" {
		if c.Cartridge != "" {
			c.OutputDir = filepath.Join(filepath.Dir(c.Cartridge), "renders")
		} else {
			c.OutputDir = "renders"
		}
	}

	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.StrokeWidth <= 0 {
		c.StrokeWidth = 6
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.FPS <= 0 {
		c.FPS = playback.DefaultFPS
	}
	if c.MaxFrames <= 0 {
		c.MaxFrames = sequence.DefaultMaxFrames
	}
	if c.Threshold <= 0 {
		c.Threshold = sequence.DefaultThreshold
	}
}
