package reduce

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/cellkit/geom"
)

// maxIterations bounds the Gram-flipping loop. Delaunay reduction of a
// non-degenerate 3D lattice converges in far fewer steps; hitting the bound
// means the input (or tolerance) is broken and must be reported, never
// silently truncated.
const maxIterations = 100

// Sentinel errors for lattice reduction.
var (
	// ErrNotConverged indicates the reduction loop hit its iteration bound
	// before all off-diagonal Gram entries became non-positive.
	ErrNotConverged = errors.New("reduce: delaunay reduction did not converge")

	// ErrDegenerate indicates no three of the seven candidate vectors are
	// linearly independent — a zero-volume (degenerate) lattice.
	ErrDegenerate = errors.New("reduce: degenerate lattice, no independent basis")
)

// Reducer is the pluggable basis-reduction contract: given a lattice as row
// vectors, return a basis of the same lattice (unimodular-related) for which
// the 27-image neighbor search is exhaustive. Delaunay is the in-package
// implementation; external Niggli/Delaunay routines may be substituted.
type Reducer func(lattice geom.Matrix3, tolerance float64) (geom.Matrix3, error)

// Delaunay reduces a lattice basis (row vectors in, row vectors out).
//
// The returned basis spans the same lattice, has all pairwise basis-vector
// dot products ≤ tolerance, and is ordered by ascending length. The volume
// (|det|) is preserved.
//
// Errors: ErrNotConverged, ErrDegenerate.
// Complexity: O(1) — fixed-size vectors, bounded iterations.
func Delaunay(lattice geom.Matrix3, tolerance float64) (geom.Matrix3, error) {
	// Extended basis: a, b, c, -(a+b+c).
	var ext [4]geom.Vec3
	ext[0], ext[1], ext[2] = lattice[0], lattice[1], lattice[2]
	ext[3] = lattice[0].Add(lattice[1]).Add(lattice[2]).Neg()

	converged := false
	for it := 0; it < maxIterations; it++ {
		if flipPositivePair(&ext, tolerance) {
			converged = true
			break
		}
	}
	if !converged {
		return geom.Matrix3{}, ErrNotConverged
	}

	return shortestBasis(ext, tolerance)
}

// flipPositivePair scans the off-diagonal Gram entries of the extended basis
// in (i,j) order and performs one reduction step on the first entry that
// exceeds tolerance: every other vector gains ext[i], and ext[i] is negated.
// Reports true when no entry exceeds tolerance (reduction complete).
func flipPositivePair(ext *[4]geom.Vec3, tolerance float64) bool {
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if ext[i].Dot(ext[j]) > tolerance {
				for k := 0; k < 4; k++ {
					if k != i && k != j {
						ext[k] = ext[k].Add(ext[i])
					}
				}
				ext[i] = ext[i].Neg()
				return false
			}
		}
	}
	return true
}

// shortestBasis forms the seven candidate vectors (four extended vectors and
// the three pairwise sums of the first three), sorts them by squared length,
// and returns the lexicographically first linearly independent triple.
func shortestBasis(ext [4]geom.Vec3, tolerance float64) (geom.Matrix3, error) {
	candidates := []geom.Vec3{
		ext[0], ext[1], ext[2], ext[3],
		ext[0].Add(ext[1]),
		ext[1].Add(ext[2]),
		ext[2].Add(ext[0]),
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].SquaredNorm() < candidates[b].SquaredNorm()
	})

	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			for k := j + 1; k < len(candidates); k++ {
				basis := geom.Matrix3{candidates[i], candidates[j], candidates[k]}
				if math.Abs(basis.Det()) > tolerance {
					return basis, nil
				}
			}
		}
	}
	return geom.Matrix3{}, ErrDegenerate
}
