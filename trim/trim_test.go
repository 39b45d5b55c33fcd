package trim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellkit/cell"
	"github.com/katalvlaran/cellkit/geom"
	"github.com/katalvlaran/cellkit/trim"
)

const tol = 1e-5

var identity = geom.Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// TestTrim_IdentityKeepsEverything: trimming against the identity axes with
// no coincident atoms returns the input unchanged.
func TestTrim_IdentityKeepsEverything(t *testing.T) {
	s, err := cell.New([]int{14, 8},
		[]geom.Vec3{{0, 0, 0}, {0.5, 0.25, 0.1}}, identity,
		cell.WithMasses([]float64{28.085, 15.999}))
	require.NoError(t, err)

	res, err := trim.Trim(identity, s, tol)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Cell.Len())
	assert.Equal(t, []int{0, 1}, res.Kept)
	assert.Equal(t, []int{0, 1}, res.Mapping)
	assert.Equal(t, s.Numbers(), res.Cell.Numbers())
	assert.Equal(t, s.Masses(), res.Cell.Masses())
	assert.Equal(t, identity, res.Cell.Lattice())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, s.Position(i)[j], res.Cell.Position(i)[j], 1e-12)
		}
	}
}

// TestTrim_DeduplicatesPeriodicImages: halving a cell along x folds the two
// replicas of each atom onto one another; the first occurrence survives and
// the mapping records the merge.
func TestTrim_DeduplicatesPeriodicImages(t *testing.T) {
	// Two replicas of one atom in a doubled cell along x.
	s, err := cell.New([]int{14, 14},
		[]geom.Vec3{{0, 0, 0}, {0.5, 0, 0}},
		geom.Matrix3{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		cell.WithMasses([]float64{28.085, 28.085}))
	require.NoError(t, err)

	axes := geom.Matrix3{{0.5, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	res, err := trim.Trim(axes, s, tol)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Cell.Len(), "the two replicas merge")
	assert.Equal(t, []int{0}, res.Kept, "first occurrence wins")
	assert.Equal(t, []int{0, 0}, res.Mapping, "atom 1 collapsed onto source atom 0")
	assert.Equal(t, []float64{28.085}, res.Cell.Masses())

	lat := res.Cell.Lattice()
	assert.InDelta(t, 1.0, lat[0][0], 1e-12, "target lattice is the halved cell")
}

// TestTrim_AmbiguousOverlap: a position within tolerance of two distinct
// kept atoms is an input-consistency violation, not a silent choice.
func TestTrim_AmbiguousOverlap(t *testing.T) {
	s, err := cell.New([]int{14, 14, 14},
		[]geom.Vec3{{0, 0, 0}, {0.6, 0, 0}, {0.3, 0, 0}}, identity)
	require.NoError(t, err)

	// 0.35 keeps atoms 0 and 1 distinct (0.4 apart, minimum image) but puts
	// atom 2 within tolerance of both.
	_, err = trim.Trim(identity, s, 0.35)
	assert.ErrorIs(t, err, trim.ErrAmbiguousOverlap)
}

// TestTrim_SingularAxes rejects non-invertible relative axes.
func TestTrim_SingularAxes(t *testing.T) {
	s, err := cell.New([]int{14}, []geom.Vec3{{0, 0, 0}}, identity)
	require.NoError(t, err)

	singular := geom.Matrix3{{1, 0, 0}, {1, 0, 0}, {0, 0, 1}}
	_, err = trim.Trim(singular, s, tol)
	assert.ErrorIs(t, err, geom.ErrSingular)
}

// TestTrim_FoldsIntoUnitCell: positions outside [0,1) in the target basis
// are folded back in.
func TestTrim_FoldsIntoUnitCell(t *testing.T) {
	s, err := cell.New([]int{14}, []geom.Vec3{{0.75, 0, 0}}, identity)
	require.NoError(t, err)

	// Target cell is the half cell along x: 0.75 → 1.5 → folds to 0.5.
	axes := geom.Matrix3{{0.5, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	res, err := trim.Trim(axes, s, tol)
	require.NoError(t, err)

	require.Equal(t, 1, res.Cell.Len())
	assert.InDelta(t, 0.5, res.Cell.Position(0)[0], 1e-12)
}
