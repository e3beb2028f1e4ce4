// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lbp/grid"
	"github.com/katalvlaran/lbp/histogram"
)

func newHistogramCmd(f *rootFlags) *cobra.Command {
	var (
		plotPath string
		cells    string
	)
	cmd := &cobra.Command{
		Use:   "histogram <input>",
		Short: "Print code histogram statistics of an image or .lbp file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.settings(cmd)
			if err != nil {
				return err
			}
			codes, err := f.loadCodes(cmd.Context(), args[0], cfg)
			if err != nil {
				return err
			}
			h, err := spatial(codes, cells)
			if err != nil {
				return err
			}

			mean, std := h.MeanStdDev()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "bins:    %d\n", h.Bins)
			fmt.Fprintf(w, "cells:   %d\n", h.Cells)
			fmt.Fprintf(w, "pixels:  %.0f\n", h.Total())
			fmt.Fprintf(w, "entropy: %.4f bits\n", h.Entropy())
			fmt.Fprintf(w, "mean:    %.4f\n", mean)
			fmt.Fprintf(w, "stddev:  %.4f\n", std)

			if plotPath != "" {
				if err := histogram.Plot(h, plotPath, cfg.PlotTitle); err != nil {
					return err
				}
				f.logf("wrote %s", plotPath)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&plotPath, "plot", "", "write a bar chart (png, svg, pdf) to this path")
	cmd.Flags().StringVar(&cells, "cells", "1x1", "spatial cell layout ROWSxCOLS")

	return cmd
}

func newCompareCmd(f *rootFlags) *cobra.Command {
	var cells string
	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare the normalized histograms of two inputs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.settings(cmd)
			if err != nil {
				return err
			}
			var hs [2]*histogram.Histogram
			for k, path := range args {
				codes, err := f.loadCodes(cmd.Context(), path, cfg)
				if err != nil {
					return err
				}
				h, err := spatial(codes, cells)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				hs[k] = h.Normalize()
			}

			chi, err := histogram.ChiSquare(hs[0], hs[1])
			if err != nil {
				return err
			}
			inter, err := histogram.Intersection(hs[0], hs[1])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "chi-square:   %.6f\n", chi)
			fmt.Fprintf(w, "intersection: %.6f\n", inter)

			return nil
		},
	}
	cmd.Flags().StringVar(&cells, "cells", "1x1", "spatial cell layout ROWSxCOLS")

	return cmd
}

func spatial(codes *grid.Codes, cells string) (*histogram.Histogram, error) {
	rows, cols, err := parseCells(cells)
	if err != nil {
		return nil, err
	}

	return histogram.Spatial(codes, rows, cols)
}

// parseCells parses "ROWSxCOLS", e.g. "4x4".
func parseCells(s string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid cells %q: want ROWSxCOLS", s)
	}
	if rows, err = strconv.Atoi(r); err != nil {
		return 0, 0, fmt.Errorf("invalid cells %q: %w", s, err)
	}
	if cols, err = strconv.Atoi(c); err != nil {
		return 0, 0, fmt.Errorf("invalid cells %q: %w", s, err)
	}

	return rows, cols, nil
}
