// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lbp/codec"
	"github.com/katalvlaran/lbp/grid"
	"github.com/katalvlaran/lbp/imageio"
	"github.com/katalvlaran/lbp/internal/config"
	"github.com/katalvlaran/lbp/lbp"
)

// codecExt selects the binary container instead of an image.
const codecExt = ".lbp"

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	radius     int
	samples    int
	width      int
	workers    int
	distinct   bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:           "lbp",
		Short:         "Local Binary Pattern texture codes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "TOML settings file")
	pf.IntVarP(&f.radius, "radius", "r", config.DefaultRadius, "ring radius")
	pf.IntVarP(&f.samples, "samples", "p", config.DefaultSamples, "sampling points (bits per code)")
	pf.IntVar(&f.width, "width", lbp.DefaultStorageWidth, "code storage width: 8, 16 or 32")
	pf.IntVar(&f.workers, "workers", lbp.DefaultWorkers, "parallel row bands, 0 = GOMAXPROCS")
	pf.BoolVar(&f.distinct, "distinct-corners", false, "visit the bottom-right ring corner once")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log progress")

	root.AddCommand(newTransformCmd(f), newHistogramCmd(f), newCompareCmd(f))

	return root
}

// settings merges the config file (if any) with flags the user set explicitly.
func (f *rootFlags) settings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
		f.logf("loaded settings from %s", f.configPath)
	}

	fl := cmd.Flags()
	if fl.Changed("radius") {
		cfg.Radius = f.radius
	}
	if fl.Changed("samples") {
		cfg.Samples = f.samples
	}
	if fl.Changed("width") {
		cfg.StorageWidth = f.width
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("distinct-corners") {
		cfg.RingMode = lbp.RingDuplicateCorner.String()
		if f.distinct {
			cfg.RingMode = lbp.RingDistinctCorners.String()
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (f *rootFlags) logf(format string, args ...any) {
	if f.verbose {
		log.Printf(format, args...)
	}
}

// loadCodes reads a code grid: .lbp containers directly, images through the
// transform with cfg.
func (f *rootFlags) loadCodes(ctx context.Context, path string, cfg *config.Config) (*grid.Codes, error) {
	if isCodecPath(path) {
		codes, err := codec.ReadFile(path)
		if err != nil {
			return nil, err
		}
		f.logf("read %dx%d codes (%d bits) from %s", codes.Rows(), codes.Cols(), codes.Bits(), path)
		return codes, nil
	}

	img, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	f.logf("loaded %s: %dx%d", path, img.Cols(), img.Rows())

	start := time.Now()
	codes, err := lbp.TransformContext(ctx, img, cfg.Radius, cfg.Samples, cfg.Options()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.logf("transform r=%d p=%d mode=%s took %v", cfg.Radius, cfg.Samples, cfg.RingMode, time.Since(start))

	return codes, nil
}

func isCodecPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), codecExt)
}
