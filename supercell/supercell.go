package supercell

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cellkit/cell"
	"github.com/katalvlaran/cellkit/geom"
	"github.com/katalvlaran/cellkit/trim"
)

// Sentinel errors for supercell construction.
var (
	// ErrBadMatrix indicates a transformation matrix with non-positive
	// determinant — no right-handed supercell exists for it.
	ErrBadMatrix = errors.New("supercell: matrix determinant must be positive")

	// ErrEmptyUnitcell indicates a unit cell without atoms.
	ErrEmptyUnitcell = errors.New("supercell: unit cell has no atoms")

	// ErrMultiplicityMismatch indicates the trimmed atom count does not equal
	// unit-cell atoms × det(matrix): atoms merged that should not have.
	ErrMultiplicityMismatch = errors.New("supercell: atom count does not match matrix determinant")
)

// MultiplicityError reports a failed atom-count validation. It unwraps to
// ErrMultiplicityMismatch and carries the raw trim mapping table so the
// caller can diagnose which atoms overlapped.
type MultiplicityError struct {
	Expected  int   // det(matrix)
	Atoms     int   // trimmed atom count
	UnitAtoms int   // unit-cell atom count
	Mapping   []int // trim mapping table (input index → kept source index)
}

func (e *MultiplicityError) Error() string {
	return fmt.Sprintf("supercell: got %d atoms from %d, want multiplicity %d",
		e.Atoms, e.UnitAtoms, e.Expected)
}

func (e *MultiplicityError) Unwrap() error { return ErrMultiplicityMismatch }

// Supercell is a unit cell replicated through an integer transformation
// matrix, together with the atom index maps between the two structures.
// It embeds the built Structure, so all cell accessors apply directly.
type Supercell struct {
	*cell.Structure

	matrix geom.IntMatrix3
	s2u    []int
	u2s    []int
	u2u    map[int]int
}

// Matrix returns the supercell transformation matrix.
func (s *Supercell) Matrix() geom.IntMatrix3 { return s.matrix }

// SupercellToUnitcell maps each supercell atom to its unit-cell atom,
// expressed in unitcell-representative index space (unit atom i appears as
// i·multiplicity). Returns a copy.
func (s *Supercell) SupercellToUnitcell() []int {
	return append([]int(nil), s.s2u...)
}

// UnitcellToSupercell maps unit atom i to its first replica in the
// supercell, i·multiplicity. Returns a copy.
func (s *Supercell) UnitcellToSupercell() []int {
	return append([]int(nil), s.u2s...)
}

// UnitcellToUnitcell is the inverse of UnitcellToSupercell with unit-cell
// indices renumbered 0..N−1. Returns a copy.
func (s *Supercell) UnitcellToUnitcell() map[int]int {
	out := make(map[int]int, len(s.u2u))
	for k, v := range s.u2u {
		out[k] = v
	}
	return out
}

// Build constructs the supercell of unitcell under matrix
// (supercell lattice = matrixᵀ·unit lattice).
//
// On a multiplicity mismatch Build returns a Supercell holding a zero-atom
// structure together with a *MultiplicityError (errors.Is
// ErrMultiplicityMismatch) carrying the mapping table — never a partially
// merged structure. Trim and validation errors propagate otherwise.
//
// Complexity: O(N·det(M)) replication plus the trim's duplicate scan.
func Build(unitcell *cell.Structure, matrix geom.IntMatrix3, tolerance float64) (*Supercell, error) {
	det := matrix.Det()
	if det <= 0 {
		return nil, ErrBadMatrix
	}
	if unitcell.Len() == 0 {
		return nil, ErrEmptyUnitcell
	}

	frame := surroundingFrame(matrix)
	simple, replicaOf, err := simpleSupercell(frame, unitcell)
	if err != nil {
		return nil, err
	}

	// Relative axes of the target lattice within the simple supercell:
	// row i of the matrix scaled by 1/frame[i].
	var trimAxes geom.Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			trimAxes[i][j] = float64(matrix[i][j]) / float64(frame[i])
		}
	}

	res, err := trim.Trim(trimAxes, simple, tolerance)
	if err != nil {
		return nil, err
	}

	numS := res.Cell.Len()
	numU := unitcell.Len()
	multi := numS / numU
	if numS%numU != 0 || multi != det {
		empty, _ := cell.New(nil, nil, res.Cell.Lattice())
		return &Supercell{Structure: empty, matrix: matrix}, &MultiplicityError{
			Expected:  det,
			Atoms:     numS,
			UnitAtoms: numU,
			Mapping:   res.Mapping,
		}
	}

	u2s := make([]int, numU)
	u2u := make(map[int]int, numU)
	for i := range u2s {
		u2s[i] = i * multi
		u2u[i*multi] = i
	}
	s2u := make([]int, numS)
	for k, src := range res.Kept {
		s2u[k] = replicaOf[src] * multi
	}

	return &Supercell{
		Structure: res.Cell,
		matrix:    matrix,
		s2u:       s2u,
		u2s:       u2s,
		u2u:       u2u,
	}, nil
}

// surroundingFrame returns the axis-aligned multiplicities (n1,n2,n3) whose
// simple n1×n2×n3 replication of the unit cell contains the target lattice.
// Derived from the 8 integer corner combinations of the matrix's columns;
// a positive determinant guarantees every component is ≥ 1.
func surroundingFrame(m geom.IntMatrix3) [3]int {
	c0, c1, c2 := m.Column(0), m.Column(1), m.Column(2)
	corners := [8][3]int{
		{0, 0, 0},
		c0,
		c1,
		c2,
		addInt3(c1, c2),
		addInt3(c2, c0),
		addInt3(c0, c1),
		addInt3(addInt3(c0, c1), c2),
	}

	var frame [3]int
	for i := 0; i < 3; i++ {
		lo, hi := corners[0][i], corners[0][i]
		for _, c := range corners[1:] {
			if c[i] < lo {
				lo = c[i]
			}
			if c[i] > hi {
				hi = c[i]
			}
		}
		frame[i] = hi - lo
	}
	return frame
}

func addInt3(a, b [3]int) [3]int {
	return [3]int{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// simpleSupercell replicates unitcell multi[0]×multi[1]×multi[2] along its
// own axes. Replication runs axis-0 fastest, then axis-1, then axis-2, per
// unit atom — the first replica of unit atom l is output atom
// l·multi[0]·multi[1]·multi[2], which the index-map convention relies on.
// replicaOf maps every emitted atom back to its unit-cell atom.
func simpleSupercell(multi [3]int, unitcell *cell.Structure) (simple *cell.Structure, replicaOf []int, err error) {
	positions := unitcell.Positions()
	numbers := unitcell.Numbers()
	masses := unitcell.Masses()
	magmoms := unitcell.MagneticMoments()

	total := unitcell.Len() * multi[0] * multi[1] * multi[2]
	outPositions := make([]geom.Vec3, 0, total)
	outNumbers := make([]int, 0, total)
	var outMasses, outMagmoms []float64
	if masses != nil {
		outMasses = make([]float64, 0, total)
	}
	if magmoms != nil {
		outMagmoms = make([]float64, 0, total)
	}
	replicaOf = make([]int, 0, total)

	for l, pos := range positions {
		for i := 0; i < multi[2]; i++ {
			for j := 0; j < multi[1]; j++ {
				for k := 0; k < multi[0]; k++ {
					outPositions = append(outPositions, geom.Vec3{
						(pos[0] + float64(k)) / float64(multi[0]),
						(pos[1] + float64(j)) / float64(multi[1]),
						(pos[2] + float64(i)) / float64(multi[2]),
					})
					outNumbers = append(outNumbers, numbers[l])
					if masses != nil {
						outMasses = append(outMasses, masses[l])
					}
					if magmoms != nil {
						outMagmoms = append(outMagmoms, magmoms[l])
					}
					replicaOf = append(replicaOf, l)
				}
			}
		}
	}

	lattice := unitcell.Lattice()
	for i := 0; i < 3; i++ {
		lattice[i] = lattice[i].Scale(float64(multi[i]))
	}

	var opts []cell.Option
	if masses != nil {
		opts = append(opts, cell.WithMasses(outMasses))
	}
	if magmoms != nil {
		opts = append(opts, cell.WithMagneticMoments(outMagmoms))
	}
	simple, err = cell.New(outNumbers, outPositions, lattice, opts...)
	if err != nil {
		return nil, nil, err
	}
	return simple, replicaOf, nil
}
