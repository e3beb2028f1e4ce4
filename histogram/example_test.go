package histogram_test

import (
	"fmt"

	"github.com/katalvlaran/lbp/grid"
	"github.com/katalvlaran/lbp/histogram"
	"github.com/katalvlaran/lbp/lbp"
)

// ExampleCompute builds the code histogram of a small image.
func ExampleCompute() {
	img, _ := grid.FromRows([][]uint8{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	a, _ := lbp.Transform(img, 1, 8)
	ha, _ := histogram.Compute(a)

	for code, n := range ha.Counts {
		if n > 0 {
			fmt.Printf("code %3d: %v\n", code, n)
		}
	}
	inter, _ := histogram.Intersection(ha.Normalize(), ha.Normalize())
	fmt.Printf("self intersection: %.2f\n", inter)
	fmt.Printf("entropy: %.3f bits\n", ha.Entropy())

	// Output:
	// code 225: 3
	// code 227: 1
	// code 253: 2
	// code 255: 3
	// self intersection: 1.00
	// entropy: 1.891 bits
}
