// Package config holds the run configuration of the treeline command,
// read from an optional TOML file and overridden by flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/treeline"
	"github.com/sirupsen/logrus"
)

var (
	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("config: workers must be >= 0")
	// ErrBadLayer indicates an unknown render layer.
	ErrBadLayer = errors.New("config: layer must be one of heights, visible, scenic")
	// ErrBadSize indicates a non-positive render size.
	ErrBadSize = errors.New("config: render width and height must be > 0")
)

// Render layers.
const (
	LayerHeights = "heights"
	LayerVisible = "visible"
	LayerScenic  = "scenic"
)

// Config is the full set of run options.
//
// Example file:
//
//	Part     = "2"
//	Input    = "day08.txt"
//	Workers  = 4
//	LogLevel = "debug"
//
//	[Render]
//	Output = "scores.png"
//	Layer  = "scenic"
type Config struct {
	// Part is "1" (visible trees) or "2" (best scenic score); see treeline.ParsePart.
	Part string
	// Input is the grid file; empty or "-" reads standard input.
	Input string
	// Workers is the number of rows scored concurrently in part 2.
	Workers int
	// LogLevel is a logrus level name.
	LogLevel string

	Render RenderConfig
}

// RenderConfig configures the render subcommand.
type RenderConfig struct {
	Output string
	Layer  string
	// Width and Height are in inches.
	Width, Height float64
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Part:     "1",
		Workers:  1,
		LogLevel: "info",
		Render: RenderConfig{
			Output: "treeline.png",
			Layer:  LayerScenic,
			Width:  4,
			Height: 4,
		},
	}
}

// Decode reads TOML from r on top of Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Load reads the TOML file at path. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := treeline.ParsePart(c.Part); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Workers < 0 {
		return ErrBadWorkers
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Render.Layer {
	case LayerHeights, LayerVisible, LayerScenic:
	default:
		return fmt.Errorf("%w: %q", ErrBadLayer, c.Render.Layer)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return ErrBadSize
	}

	return nil
}
