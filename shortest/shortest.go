package shortest

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cellkit/cell"
	"github.com/katalvlaran/cellkit/geom"
	"github.com/katalvlaran/cellkit/reduce"
)

// Sentinel errors for shortest-vector computation.
var (
	// ErrBadMap indicates an empty primitive→supercell map or one referencing
	// atoms outside the supercell.
	ErrBadMap = errors.New("shortest: invalid primitive-to-supercell map")

	// ErrAtomIndex indicates a pair index outside the valid range.
	ErrAtomIndex = errors.New("shortest: atom index out of range")
)

// Options configures the engine.
type Options struct {
	// Reducer is the basis-reduction backend; nil-Options callers and a nil
	// Reducer both get reduce.Delaunay. Any Reducer satisfying the 27-image
	// guarantee may be substituted.
	Reducer reduce.Reducer
}

// DefaultOptions returns Options with the in-package Delaunay reduction.
func DefaultOptions() Options {
	return Options{Reducer: reduce.Delaunay}
}

// Table holds, per (supercell atom, primitive atom) pair, all displacement
// vectors tied for minimum length, in primitive-cell fractional coordinates.
// Tables are immutable: accessors copy.
type Table struct {
	nSuper  int
	nPrim   int
	vectors [][]geom.Vec3 // pair (s,p) at s·nPrim+p; len ≥ 1 per pair
}

// Dims returns (supercell atoms, primitive atoms).
func (t *Table) Dims() (nSuper, nPrim int) { return t.nSuper, t.nPrim }

// pairIndex maps (s, p) onto the flat vectors slice. Panics on indexes
// outside the table so a negative p can never alias another pair.
func (t *Table) pairIndex(s, p int) int {
	if s < 0 || s >= t.nSuper || p < 0 || p >= t.nPrim {
		panic(fmt.Sprintf("shortest: pair (%d, %d) out of table dims (%d, %d)",
			s, p, t.nSuper, t.nPrim))
	}
	return s*t.nPrim + p
}

// Multiplicity returns the number of tied shortest vectors for pair (s, p).
// Panics when (s, p) is outside the table's dimensions.
func (t *Table) Multiplicity(s, p int) int {
	return len(t.vectors[t.pairIndex(s, p)])
}

// Vectors returns a copy of the tied shortest vectors for pair (s, p),
// from primitive atom p to supercell atom s, in primitive fractional
// coordinates, in deterministic image order.
// Panics when (s, p) is outside the table's dimensions.
func (t *Table) Vectors(s, p int) []geom.Vec3 {
	return append([]geom.Vec3(nil), t.vectors[t.pairIndex(s, p)]...)
}

// latticePoints returns the 27 integer offsets {-1,0,1}³, first component
// slowest. The order fixes the tie order stored in a Table.
func latticePoints() [27]geom.Vec3 {
	var pts [27]geom.Vec3
	n := 0
	for i := -1.0; i <= 1; i++ {
		for j := -1.0; j <= 1; j++ {
			for k := -1.0; k <= 1; k++ {
				pts[n] = geom.Vec3{i, j, k}
				n++
			}
		}
	}
	return pts
}

// Compute builds the shortest-vector table between a supercell and the
// primitive cell selected by p2s (the primitive→supercell atom map from
// cellkit/primitive), under primLattice (the primitive cell's lattice).
//
// Errors: ErrBadMap for empty/out-of-range maps; reduction failures and
// singular lattices propagate.
// Complexity: O(nS·nP·27) arithmetic, executed as two dense products over
// one (nS·nP·27)×3 candidate matrix.
func Compute(super *cell.Structure, primLattice geom.Matrix3, p2s []int, tolerance float64, opts *Options) (*Table, error) {
	nSuper := super.Len()
	nPrim := len(p2s)
	if nPrim == 0 || nPrim > nSuper {
		return nil, ErrBadMap
	}
	for _, j := range p2s {
		if j < 0 || j >= nSuper {
			return nil, ErrBadMap
		}
	}

	reducer := reduce.Delaunay
	if opts != nil && opts.Reducer != nil {
		reducer = opts.Reducer
	}
	reduced, err := reducer(super.Lattice(), tolerance)
	if err != nil {
		return nil, err
	}
	reducedInv, err := reduced.Inverse()
	if err != nil {
		return nil, err
	}
	primInv, err := primLattice.Inverse()
	if err != nil {
		return nil, err
	}
	// Reduced-basis fractional → primitive-cell fractional.
	toPrim := reduced.Mul(primInv)

	// Fold all positions into (-0.5, 0.5] of the reduced basis; one batch.
	superFracs := geom.MulRows(super.CartesianPositions(), reducedInv)
	for i := range superFracs {
		superFracs[i] = superFracs[i].FoldHalf()
	}
	primFracs := make([]geom.Vec3, nPrim)
	for p, j := range p2s {
		primFracs[p] = superFracs[j]
	}

	// Candidate tensor (nSuper, nPrim, 27, 3) flattened to rows.
	points := latticePoints()
	rows := nSuper * nPrim * len(points)
	data := make([]float64, 0, rows*3)
	for s := 0; s < nSuper; s++ {
		for p := 0; p < nPrim; p++ {
			diff := superFracs[s].Sub(primFracs[p])
			for _, pt := range points {
				c := diff.Add(pt)
				data = append(data, c[0], c[1], c[2])
			}
		}
	}
	candidates := mat.NewDense(rows, 3, data)

	var carts, prims mat.Dense
	carts.Mul(candidates, reduced.Dense())
	prims.Mul(candidates, toPrim.Dense())

	vectors := make([][]geom.Vec3, nSuper*nPrim)
	for pair := 0; pair < nSuper*nPrim; pair++ {
		base := pair * len(points)

		minLen := math.Inf(1)
		var lengths [27]float64
		for c := 0; c < len(points); c++ {
			row := carts.RawRowView(base + c)
			lengths[c] = math.Sqrt(row[0]*row[0] + row[1]*row[1] + row[2]*row[2])
			if lengths[c] < minLen {
				minLen = lengths[c]
			}
		}

		var tied []geom.Vec3
		for c := 0; c < len(points); c++ {
			if lengths[c]-minLen < tolerance {
				row := prims.RawRowView(base + c)
				tied = append(tied, geom.Vec3{row[0], row[1], row[2]})
			}
		}
		vectors[pair] = tied
	}

	return &Table{nSuper: nSuper, nPrim: nPrim, vectors: vectors}, nil
}

// Pair computes the tied shortest vectors for a single
// (supercell atom, primitive atom) pair, without building the full table.
// The primitive atom is given as a supercell atom index (an entry of the
// p2s map). Useful for arbitrary-pair distance queries.
func Pair(super *cell.Structure, primLattice geom.Matrix3, superAtom, primAtom int, tolerance float64, opts *Options) ([]geom.Vec3, error) {
	if superAtom < 0 || superAtom >= super.Len() || primAtom < 0 || primAtom >= super.Len() {
		return nil, ErrAtomIndex
	}

	reducer := reduce.Delaunay
	if opts != nil && opts.Reducer != nil {
		reducer = opts.Reducer
	}
	reduced, err := reducer(super.Lattice(), tolerance)
	if err != nil {
		return nil, err
	}
	reducedInv, err := reduced.Inverse()
	if err != nil {
		return nil, err
	}
	primInv, err := primLattice.Inverse()
	if err != nil {
		return nil, err
	}
	toPrim := reduced.Mul(primInv)

	lattice := super.Lattice()
	sPos := super.Position(superAtom).MulMatrix(lattice).MulMatrix(reducedInv).FoldHalf()
	pPos := super.Position(primAtom).MulMatrix(lattice).MulMatrix(reducedInv).FoldHalf()
	diff := sPos.Sub(pPos)

	points := latticePoints()
	var lengths [27]float64
	minLen := math.Inf(1)
	for c, pt := range points {
		lengths[c] = diff.Add(pt).MulMatrix(reduced).Norm()
		if lengths[c] < minLen {
			minLen = lengths[c]
		}
	}
	var tied []geom.Vec3
	for c, pt := range points {
		if lengths[c]-minLen < tolerance {
			tied = append(tied, diff.Add(pt).MulMatrix(toPrim))
		}
	}
	return tied, nil
}
