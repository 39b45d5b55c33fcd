package cell_test

import (
	"fmt"

	"github.com/katalvlaran/cellkit/cell"
	"github.com/katalvlaran/cellkit/geom"
)

// ExampleDistance shows that the pair distance is taken over periodic
// images: the atom at fractional 0.75 is 0.25 away from the origin through
// the cell boundary, not 0.75 across the cell.
func ExampleDistance() {
	lattice := geom.Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	s, err := cell.New([]int{14, 14},
		[]geom.Vec3{{0, 0, 0}, {0.75, 0, 0}}, lattice)
	if err != nil {
		fmt.Println(err)
		return
	}

	d, err := cell.Distance(s, 0, 1, 1e-5)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f\n", d)
	// Output: 0.25
}
