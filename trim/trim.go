package trim

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cellkit/cell"
	"github.com/katalvlaran/cellkit/geom"
)

// ErrAmbiguousOverlap indicates a folded position matched more than one
// previously kept atom within tolerance. That means the input geometry is
// inconsistent (or the tolerance too loose); picking one match silently
// would corrupt the mapping, so the whole trim fails.
var ErrAmbiguousOverlap = errors.New("trim: position overlaps multiple kept atoms")

// Result is the outcome of a Trim.
//
//   - Cell — the deduplicated structure under the target lattice; atom k of
//     Cell is input atom Kept[k].
//   - Kept — kept source indices, in output order (injective output→input).
//   - Mapping — length = input atom count; Mapping[i] is the SOURCE index of
//     the kept atom that input atom i collapsed onto (i itself when kept).
type Result struct {
	Cell    *cell.Structure
	Kept    []int
	Mapping []int
}

// Trim folds every atom of c into the cell spanned by
// relativeAxesᵀ·c.Lattice() and merges coincident atoms.
//
// Duplicate detection compares each folded position against all previously
// kept ones: minimum-image fractional difference, converted to cartesian
// under the target lattice, Euclidean norm < tolerance. Exactly one kept
// match marks a duplicate; more than one is ErrAmbiguousOverlap.
//
// Errors: geom.ErrSingular when relativeAxes is not invertible;
// ErrAmbiguousOverlap (wrapped with the offending atom index).
// Complexity: O(n·m) position comparisons for n input and m kept atoms; the
// basis change itself is one batched n×3 product.
func Trim(relativeAxes geom.Matrix3, c *cell.Structure, tolerance float64) (*Result, error) {
	invAxes, err := relativeAxes.Inverse()
	if err != nil {
		return nil, err
	}
	lattice := relativeAxes.Transpose().Mul(c.Lattice())

	// All positions in the target basis, folded into [0,1), in one batch.
	folded := geom.MulRows(c.Positions(), invAxes.Transpose())
	for i := range folded {
		folded[i] = folded[i].FoldUnit()
	}

	numbers := c.Numbers()
	masses := c.Masses()
	magmoms := c.MagneticMoments()

	var (
		keptPositions []geom.Vec3
		keptNumbers   []int
		keptMasses    []float64
		keptMagmoms   []float64
		kept          []int
	)
	mapping := make([]int, len(folded))
	for i := range mapping {
		mapping[i] = i
	}

	for i, pos := range folded {
		overlap := -1
		for k, keptPos := range keptPositions {
			diff := keptPos.Sub(pos).FoldHalf()
			if diff.MulMatrix(lattice).Norm() < tolerance {
				if overlap >= 0 {
					return nil, fmt.Errorf("atom %d: %w", i, ErrAmbiguousOverlap)
				}
				overlap = k
			}
		}
		if overlap >= 0 {
			mapping[i] = kept[overlap]
			continue
		}
		keptPositions = append(keptPositions, pos)
		keptNumbers = append(keptNumbers, numbers[i])
		if masses != nil {
			keptMasses = append(keptMasses, masses[i])
		}
		if magmoms != nil {
			keptMagmoms = append(keptMagmoms, magmoms[i])
		}
		kept = append(kept, i)
	}

	var opts []cell.Option
	if masses != nil {
		opts = append(opts, cell.WithMasses(keptMasses))
	}
	if magmoms != nil {
		opts = append(opts, cell.WithMagneticMoments(keptMagmoms))
	}
	trimmed, err := cell.New(keptNumbers, keptPositions, lattice, opts...)
	if err != nil {
		return nil, err
	}

	return &Result{Cell: trimmed, Kept: kept, Mapping: mapping}, nil
}
