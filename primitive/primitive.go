package primitive

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/cellkit/cell"
	"github.com/katalvlaran/cellkit/geom"
	"github.com/katalvlaran/cellkit/shortest"
	"github.com/katalvlaran/cellkit/trim"
)

// ErrUnmatchedAtom indicates a supercell atom equivalent to no primitive
// atom within tolerance — the transformation matrix and tolerance are
// mutually inconsistent.
var ErrUnmatchedAtom = errors.New("primitive: supercell atom matches no primitive atom")

// UnmatchedAtomError identifies the first supercell atom that failed to
// match. It unwraps to ErrUnmatchedAtom.
type UnmatchedAtomError struct {
	Atom int // supercell atom index
}

func (e *UnmatchedAtomError) Error() string {
	return fmt.Sprintf("primitive: supercell atom %d matches no primitive atom", e.Atom)
}

func (e *UnmatchedAtomError) Unwrap() error { return ErrUnmatchedAtom }

// Options configures the build; it is forwarded to the shortest-vector
// engine (pluggable reduction backend).
type Options = shortest.Options

// Primitive is a primitive cell extracted from a supercell, together with
// the atom index maps and the shortest-vector table. It embeds the trimmed
// Structure, so all cell accessors apply directly.
type Primitive struct {
	*cell.Structure

	matrix  geom.Matrix3
	p2s     []int
	s2p     []int
	p2p     map[int]int
	vectors *shortest.Table
}

// Matrix returns the primitive transformation matrix.
func (p *Primitive) Matrix() geom.Matrix3 { return p.matrix }

// PrimitiveToSupercell maps primitive atom k to its source supercell atom.
// Returns a copy.
func (p *Primitive) PrimitiveToSupercell() []int {
	return append([]int(nil), p.p2s...)
}

// SupercellToPrimitive maps each supercell atom to the supercell index of
// its equivalent primitive atom. Returns a copy.
func (p *Primitive) SupercellToPrimitive() []int {
	return append([]int(nil), p.s2p...)
}

// PrimitiveToPrimitive maps the supercell index of each primitive atom to
// its 0-based index within the primitive cell (the inverse of
// PrimitiveToSupercell). Returns a copy.
func (p *Primitive) PrimitiveToPrimitive() map[int]int {
	out := make(map[int]int, len(p.p2p))
	for k, v := range p.p2p {
		out[k] = v
	}
	return out
}

// ShortestVectors returns the shortest-vector table between the supercell
// and this primitive cell.
func (p *Primitive) ShortestVectors() *shortest.Table { return p.vectors }

// Build extracts the primitive cell of super under matrix
// (primitive lattice = matrixᵀ·supercell lattice), computes all index maps,
// and the shortest-vector table. opts may be nil.
//
// Errors: trim failures (including trim.ErrAmbiguousOverlap and
// geom.ErrSingular) propagate; *UnmatchedAtomError when some supercell atom
// matches no primitive atom; shortest-vector failures propagate.
func Build(super *cell.Structure, matrix geom.Matrix3, tolerance float64, opts *Options) (*Primitive, error) {
	res, err := trim.Trim(matrix, super, tolerance)
	if err != nil {
		return nil, err
	}
	p2s := res.Kept

	s2p, err := supercellToPrimitive(super, matrix, p2s, tolerance)
	if err != nil {
		return nil, err
	}

	p2p := make(map[int]int, len(p2s))
	for i, j := range p2s {
		p2p[j] = i
	}

	vectors, err := shortest.Compute(super, res.Cell.Lattice(), p2s, tolerance, opts)
	if err != nil {
		return nil, err
	}

	return &Primitive{
		Structure: res.Cell,
		matrix:    matrix,
		p2s:       append([]int(nil), p2s...),
		s2p:       s2p,
		p2p:       p2p,
		vectors:   vectors,
	}, nil
}

// supercellToPrimitive matches every supercell atom against the primitive
// atoms by minimum-image comparison of primitive-lattice fractional
// coordinates; first match wins. O(nSuper·nPrim), nPrim ≤ nSuper.
func supercellToPrimitive(super *cell.Structure, matrix geom.Matrix3, p2s []int, tolerance float64) ([]int, error) {
	inv, err := matrix.Inverse()
	if err != nil {
		return nil, err
	}
	invT := inv.Transpose()

	positions := super.Positions()
	primPositions := make([]geom.Vec3, len(p2s))
	for i, j := range p2s {
		primPositions[i] = positions[j].MulMatrix(invT)
	}

	s2p := make([]int, len(positions))
	for i, pos := range positions {
		sPos := pos.MulMatrix(invT)
		found := false
		for k, pPos := range primPositions {
			diff := pPos.Sub(sPos).FoldHalf()
			if math.Abs(diff[0]) < tolerance &&
				math.Abs(diff[1]) < tolerance &&
				math.Abs(diff[2]) < tolerance {
				s2p[i] = p2s[k]
				found = true
				break
			}
		}
		if !found {
			return nil, &UnmatchedAtomError{Atom: i}
		}
	}
	return s2p, nil
}
