// Package mapart runs the full image to block command pipeline.
package mapart

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/jmylchreest/blockart/internal/colour"
	"github.com/jmylchreest/blockart/internal/command"
)

// Config holds configuration for a generator run.
type Config struct {
	// Passes lists the metrics to quantize with, in order. Each pass gets its own image.
	Passes []colour.Metric

	// CommandMetric selects which pass the commands are generated from.
	// It must be one of Passes.
	CommandMetric colour.Metric

	// Area is the minimum footprint of the background fill.
	Area command.Area

	// OutDir is where pass images are written.
	OutDir string

	// WriteImages disables pass images when false.
	WriteImages bool

	// Workers is the number of rows quantized concurrently. 0 means one per CPU.
	Workers int
}

// DefaultConfig returns the default configuration: a euclidean pass and a
// redmean pass, commands from the redmean one, one 128x128 map.
func DefaultConfig() Config {
	return Config{
		Passes:        []colour.Metric{colour.MetricEuclidean, colour.MetricRedmean},
		CommandMetric: colour.MetricRedmean,
		Area:          command.DefaultArea,
		OutDir:        ".",
		WriteImages:   true,
	}
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if len(c.Passes) == 0 {
		return fmt.Errorf("at least one quantization pass is required")
	}
	seen := make(map[colour.Metric]bool, len(c.Passes))
	for _, m := range c.Passes {
		if !m.IsValid() {
			return fmt.Errorf("pass %q: %w", m, colour.ErrUnknownMetric)
		}
		if seen[m] {
			return fmt.Errorf("pass %q listed twice", m)
		}
		seen[m] = true
	}
	if !slices.Contains(c.Passes, c.CommandMetric) {
		return fmt.Errorf("command metric %q is not one of the passes %v", c.CommandMetric, c.Passes)
	}
	if err := c.Area.Validate(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// ImagePath returns where the image for a pass is written.
// The euclidean and redmean passes keep their historical names.
func (c Config) ImagePath(m colour.Metric) string {
	var name string
	switch m {
	case colour.MetricEuclidean:
		name = "First.png"
	case colour.MetricRedmean:
		name = "Second.png"
	default:
		name = string(m) + ".png"
	}
	return filepath.Join(c.OutDir, name)
}
