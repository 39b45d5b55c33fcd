package supercell_test

import (
	"fmt"

	"github.com/katalvlaran/cellkit/cell"
	"github.com/katalvlaran/cellkit/geom"
	"github.com/katalvlaran/cellkit/supercell"
)

// ExampleBuild constructs the conventional cubic cell of copper (4 atoms)
// from its one-atom FCC primitive cell through a non-diagonal integer
// transformation matrix.
func ExampleBuild() {
	fcc := geom.Matrix3{{0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0}}
	unit, err := cell.New([]int{29}, []geom.Vec3{{0, 0, 0}}, fcc)
	if err != nil {
		fmt.Println(err)
		return
	}

	matrix := geom.IntMatrix3{{-1, 1, 1}, {1, -1, 1}, {1, 1, -1}}
	sc, err := supercell.Build(unit, matrix, 1e-5)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("atoms:", sc.Len())
	fmt.Println("supercell→unitcell:", sc.SupercellToUnitcell())
	// Output:
	// atoms: 4
	// supercell→unitcell: [0 0 0 0]
}
