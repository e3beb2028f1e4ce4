// SPDX-License-Identifier: MIT
// Command lbp computes Local Binary Pattern code grids and histograms.
//
//	lbp transform photo.png codes.lbp -r 2 -p 12 --width 16
//	lbp transform photo.jpg codes.png
//	lbp histogram codes.lbp --plot hist.png
//	lbp compare a.png b.png --cells 4x4
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lbp: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
