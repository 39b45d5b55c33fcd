package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellkit/geom"
)

// TestVec3_Algebra exercises the elementary vector operations used across
// the lattice code.
func TestVec3_Algebra(t *testing.T) {
	v := geom.Vec3{1, 2, 3}
	w := geom.Vec3{-1, 0, 2}

	assert.Equal(t, geom.Vec3{0, 2, 5}, v.Add(w), "Add")
	assert.Equal(t, geom.Vec3{2, 2, 1}, v.Sub(w), "Sub")
	assert.Equal(t, geom.Vec3{-1, -2, -3}, v.Neg(), "Neg")
	assert.Equal(t, geom.Vec3{2, 4, 6}, v.Scale(2), "Scale")
	assert.Equal(t, 5.0, v.Dot(w), "Dot")
	assert.Equal(t, 14.0, v.SquaredNorm(), "SquaredNorm")
	assert.InDelta(t, 3.0, geom.Vec3{2, 2, 1}.Norm(), 1e-12, "Norm")
}

// TestVec3_Folding verifies the [0,1) and (-0.5,0.5] folds used for
// periodic coordinates.
func TestVec3_Folding(t *testing.T) {
	v := geom.Vec3{1.25, -0.25, 2.0}
	assert.Equal(t, geom.Vec3{0.25, 0.75, 0.0}, v.FoldUnit(), "FoldUnit")

	f := geom.Vec3{0.75, -1.25, 0.5}.FoldHalf()
	assert.InDelta(t, -0.25, f[0], 1e-15)
	assert.InDelta(t, -0.25, f[1], 1e-15)
	// Exactly 0.5 stays at 0.5 — the fold range is half-open at -0.5.
	assert.InDelta(t, 0.5, f[2], 1e-15)
}

// TestVec3_MulMatrix checks the row-vector convention: frac·lattice = cart.
func TestVec3_MulMatrix(t *testing.T) {
	lattice := geom.Matrix3{{2, 0, 0}, {0, 3, 0}, {1, 0, 4}}
	got := geom.Vec3{0.5, 1, 0.25}.MulMatrix(lattice)
	assert.Equal(t, geom.Vec3{1.25, 3, 1}, got)
}

// TestMatrix3_DetAndTranspose checks the closed-form determinant and mᵀ.
func TestMatrix3_DetAndTranspose(t *testing.T) {
	m := geom.Matrix3{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}}
	assert.InDelta(t, 1.0, m.Det(), 1e-12, "determinant")
	assert.Equal(t, geom.Matrix3{{1, 0, 5}, {2, 1, 6}, {3, 4, 0}}, m.Transpose())
}

// TestMatrix3_Inverse verifies m·m⁻¹ = I and the ErrSingular sentinel.
func TestMatrix3_Inverse(t *testing.T) {
	m := geom.Matrix3{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}}
	inv, err := m.Inverse()
	require.NoError(t, err)

	prod := m.Mul(inv)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, prod[i][j], 1e-9, "m·m⁻¹ at (%d,%d)", i, j)
		}
	}

	_, err = geom.Matrix3{{1, 0, 0}, {2, 0, 0}, {0, 0, 0}}.Inverse()
	assert.ErrorIs(t, err, geom.ErrSingular, "rank-deficient matrix must fail")
}

// TestIntMatrix3 covers the integer determinant, column access, and the
// real-valued conversion.
func TestIntMatrix3(t *testing.T) {
	m := geom.IntMatrix3{{-1, 1, 1}, {1, -1, 1}, {1, 1, -1}}
	assert.Equal(t, 4, m.Det(), "FCC-from-primitive matrix has determinant 4")
	assert.Equal(t, [3]int{-1, 1, 1}, m.Column(0))
	assert.InDelta(t, 4.0, m.ToMatrix3().Det(), 1e-12)
}

// TestMulRows checks the batched row product against the scalar one.
func TestMulRows(t *testing.T) {
	m := geom.Matrix3{{2, 0, 0}, {0, 3, 0}, {1, 0, 4}}
	vs := []geom.Vec3{{1, 0, 0}, {0.5, 1, 0.25}, {-1, 2, 0}}

	got := geom.MulRows(vs, m)
	require.Len(t, got, len(vs))
	for i, v := range vs {
		want := v.MulMatrix(m)
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want[j], got[i][j], 1e-12, "row %d component %d", i, j)
		}
	}

	assert.Nil(t, geom.MulRows(nil, m), "empty batch yields nil")
}

// TestCellParametersAndAngles verifies the parameter/angle extraction on a
// lattice with known geometry.
func TestCellParametersAndAngles(t *testing.T) {
	// a along x (length 2), b along y (length 3), c along x+z at 45° to a.
	lattice := geom.Matrix3{{2, 0, 0}, {0, 3, 0}, {1, 0, 1}}

	a, b, c := geom.CellParameters(lattice)
	assert.InDelta(t, 2.0, a, 1e-12)
	assert.InDelta(t, 3.0, b, 1e-12)
	assert.InDelta(t, 1.4142135623730951, c, 1e-12)

	alpha, beta, gamma := geom.CellAngles(lattice)
	assert.InDelta(t, 90.0, alpha, 1e-9, "b^c")
	assert.InDelta(t, 45.0, beta, 1e-9, "c^a")
	assert.InDelta(t, 90.0, gamma, 1e-9, "a^b")
}

// TestCellMatrix_RoundTrip builds a triclinic lattice from parameters and
// recovers the same parameters from it.
func TestCellMatrix_RoundTrip(t *testing.T) {
	lattice, err := geom.CellMatrix(3, 4, 5, 80, 70, 60)
	require.NoError(t, err)

	a, b, c := geom.CellParameters(lattice)
	assert.InDelta(t, 3.0, a, 1e-9)
	assert.InDelta(t, 4.0, b, 1e-9)
	assert.InDelta(t, 5.0, c, 1e-9)

	alpha, beta, gamma := geom.CellAngles(lattice)
	assert.InDelta(t, 80.0, alpha, 1e-9)
	assert.InDelta(t, 70.0, beta, 1e-9)
	assert.InDelta(t, 60.0, gamma, 1e-9)
}

// TestCellMatrix_Invalid rejects parameters that describe no real cell.
func TestCellMatrix_Invalid(t *testing.T) {
	_, err := geom.CellMatrix(0, 1, 1, 90, 90, 90)
	assert.ErrorIs(t, err, geom.ErrBadCellParameters, "non-positive length")

	// α=10°, β=170° cannot close a 3D cell with γ=90°.
	_, err = geom.CellMatrix(1, 1, 1, 10, 170, 90)
	assert.ErrorIs(t, err, geom.ErrBadCellParameters, "impossible angles")
}
