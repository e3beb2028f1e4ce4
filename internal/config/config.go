// SPDX-License-Identifier: MIT
// Package config loads the lbp command's TOML settings file.
//
// A settings file may set any subset of keys; omitted keys keep Default()
// values. Unknown keys are rejected so typos do not pass silently.
//
//	radius = 2
//	samples = 12
//	storage_width = 16
//	ring_mode = "distinct-corners"
//	workers = 4
//	output = "codes.lbp"
//	plot_title = "LBP histogram"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lbp/grid"
	"github.com/katalvlaran/lbp/lbp"
)

// Defaults for the command line.
const (
	DefaultRadius  = 1
	DefaultSamples = 8

	// maxFileSize caps the settings file at 1 MiB.
	maxFileSize = 1 << 20
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds transform parameters and command outputs.
type Config struct {
	Radius       int    `toml:"radius"`
	Samples      int    `toml:"samples"`
	StorageWidth int    `toml:"storage_width"`
	RingMode     string `toml:"ring_mode"`
	Workers      int    `toml:"workers"`
	Output       string `toml:"output"`
	PlotTitle    string `toml:"plot_title"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Radius:       DefaultRadius,
		Samples:      DefaultSamples,
		StorageWidth: lbp.DefaultStorageWidth,
		RingMode:     lbp.DefaultRingMode.String(),
		Workers:      lbp.DefaultWorkers,
		PlotTitle:    "LBP code histogram",
	}
}

// Load reads a TOML file on top of Default() and validates the result.
func Load(path string) (*Config, error) {
	clean := filepath.Clean(path)
	if ext := filepath.Ext(clean); ext != ".toml" {
		return nil, fmt.Errorf("config file must have .toml extension, got %q", ext)
	}
	info, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	cfg := Default()
	md, err := toml.DecodeFile(clean, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", clean, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: unknown keys %s in %q", ErrInvalid, strings.Join(keys, ", "), clean)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the parameters the transform would reject, so bad files
// fail before any image is read.
func (c *Config) Validate() error {
	mode, err := lbp.ParseRingMode(c.RingMode)
	if err != nil {
		return fmt.Errorf("%w: ring_mode %q", ErrInvalid, c.RingMode)
	}
	switch {
	case c.Radius < 1:
		return fmt.Errorf("%w: radius %d must be >= 1", ErrInvalid, c.Radius)
	case !grid.ValidWidth(c.StorageWidth):
		return fmt.Errorf("%w: storage_width %d must be 8, 16 or 32", ErrInvalid, c.StorageWidth)
	case c.Samples < 1 || c.Samples > c.StorageWidth:
		return fmt.Errorf("%w: samples %d must be in [1, %d]", ErrInvalid, c.Samples, c.StorageWidth)
	case c.Samples > lbp.RingLength(c.Radius, mode):
		return fmt.Errorf("%w: samples %d exceed ring length %d", ErrInvalid, c.Samples, lbp.RingLength(c.Radius, mode))
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d must be >= 0", ErrInvalid, c.Workers)
	}

	return nil
}

// Options converts the settings into transform options.
// Call Validate first; an unparsable ring mode falls back to the default.
func (c *Config) Options() []lbp.Option {
	mode, err := lbp.ParseRingMode(c.RingMode)
	if err != nil {
		mode = lbp.DefaultRingMode
	}

	return []lbp.Option{
		lbp.WithStorageWidth(c.StorageWidth),
		lbp.WithRingMode(mode),
		lbp.WithWorkers(c.Workers),
	}
}
