package cell

import (
	"github.com/katalvlaran/cellkit/geom"
	"github.com/katalvlaran/cellkit/reduce"
)

// Distance returns the shortest distance between atoms a0 and a1 under
// periodic boundary conditions.
//
// The lattice is Delaunay-reduced first, both positions are folded into
// (−0.5, 0.5] fractional coordinates of the reduced basis, and the minimum
// is taken over the 27 neighboring images — which the reduction guarantees
// to contain the true shortest image. The result is invariant under
// translating either atom's fractional position by any integer vector.
//
// Errors: ErrAtomIndex for bad indices; reduction failures propagate from
// reduce.Delaunay.
func Distance(s *Structure, a0, a1 int, tolerance float64) (float64, error) {
	if a0 < 0 || a0 >= s.Len() || a1 < 0 || a1 >= s.Len() {
		return 0, ErrAtomIndex
	}

	reduced, err := reduce.Delaunay(s.lattice, tolerance)
	if err != nil {
		return 0, err
	}
	inv, err := reduced.Inverse()
	if err != nil {
		return 0, err
	}

	p0 := s.positions[a0].MulMatrix(s.lattice).MulMatrix(inv).FoldHalf()
	p1 := s.positions[a1].MulMatrix(s.lattice).MulMatrix(inv).FoldHalf()
	diff := p0.Sub(p1)

	best := diff.MulMatrix(reduced).Norm()
	for i := -1.0; i <= 1; i++ {
		for j := -1.0; j <= 1; j++ {
			for k := -1.0; k <= 1; k++ {
				d := diff.Add(geom.Vec3{i, j, k}).MulMatrix(reduced).Norm()
				if d < best {
					best = d
				}
			}
		}
	}
	return best, nil
}
