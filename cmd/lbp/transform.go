// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lbp/codec"
	"github.com/katalvlaran/lbp/imageio"
)

var errNoOutput = errors.New("no output path: pass one or set output in the config file")

func newTransformCmd(f *rootFlags) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "transform <input> [output]",
		Short: "Compute the code grid of an image",
		Long: "Compute the LBP code grid of an image. Outputs ending in .lbp are\n" +
			"written as a binary container; any other extension is saved as an\n" +
			"image with codes scaled to 0..255.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.settings(cmd)
			if err != nil {
				return err
			}
			out := cfg.Output
			if len(args) == 2 {
				out = args[1]
			}
			if out == "" {
				return errNoOutput
			}

			codes, err := f.loadCodes(cmd.Context(), args[0], cfg)
			if err != nil {
				return err
			}

			if isCodecPath(out) {
				err = codec.WriteFile(out, codes, codec.WithCompression(!raw))
			} else {
				err = imageio.SaveCodes(out, codes)
			}
			if err != nil {
				return err
			}
			f.logf("wrote %s", out)

			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "store the .lbp payload uncompressed")

	return cmd
}
