// Package geom: core value types (Vec3, Matrix3, IntMatrix3) and the
// sentinel errors of the package. Lattice parameter helpers live in
// geometry.go; gonum bridging lives in dense.go.
package geom

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for geom operations.
var (
	// ErrSingular indicates a 3×3 matrix with (numerically) zero determinant
	// was passed to an operation that requires invertibility.
	ErrSingular = errors.New("geom: singular matrix")

	// ErrBadCellParameters indicates lattice parameters (lengths/angles)
	// that do not describe a realizable three-dimensional cell.
	ErrBadCellParameters = errors.New("geom: cell parameters describe no real lattice")
)

// Vec3 is a 3-component row vector (fractional or cartesian coordinates).
type Vec3 [3]float64

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v − w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Neg returns −v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{s * v[0], s * v[1], s * v[2]}
}

// Dot returns the scalar product v·w.
func (v Vec3) Dot(w Vec3) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// SquaredNorm returns v·v. Prefer it over Norm when only comparing lengths
// of the same kind (no tolerance involved).
func (v Vec3) SquaredNorm() float64 {
	return v.Dot(v)
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// MulMatrix returns the row-vector product v·m. With m a lattice whose rows
// are basis vectors, this converts a fractional position into cartesian.
func (v Vec3) MulMatrix(m Matrix3) Vec3 {
	var out Vec3
	for j := 0; j < 3; j++ {
		out[j] = v[0]*m[0][j] + v[1]*m[1][j] + v[2]*m[2][j]
	}
	return out
}

// FoldUnit folds every component into [0,1) by subtracting its floor.
func (v Vec3) FoldUnit() Vec3 {
	return Vec3{
		v[0] - math.Floor(v[0]),
		v[1] - math.Floor(v[1]),
		v[2] - math.Floor(v[2]),
	}
}

// FoldHalf folds every component into (−0.5, 0.5] by subtracting the nearest
// integer (ties to even, matching the minimum-image convention used for
// periodic difference vectors).
func (v Vec3) FoldHalf() Vec3 {
	return Vec3{
		v[0] - math.RoundToEven(v[0]),
		v[1] - math.RoundToEven(v[1]),
		v[2] - math.RoundToEven(v[2]),
	}
}

// Matrix3 is a 3×3 real matrix. Throughout cellkit its rows are lattice
// basis vectors: m[0]=a, m[1]=b, m[2]=c.
type Matrix3 [3]Vec3

// Row returns row i as a Vec3 (basis vector i for a lattice).
func (m Matrix3) Row(i int) Vec3 { return m[i] }

// Transpose returns mᵀ.
func (m Matrix3) Transpose() Matrix3 {
	var t Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i]
		}
	}
	return t
}

// Mul returns the matrix product m·n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return out
}

// Det returns the determinant of m (closed form; no pivoting).
func (m Matrix3) Det() float64 {
	return m[0][0]*m[1][1]*m[2][2] -
		m[0][0]*m[1][2]*m[2][1] +
		m[0][1]*m[1][2]*m[2][0] -
		m[0][1]*m[1][0]*m[2][2] +
		m[0][2]*m[1][0]*m[2][1] -
		m[0][2]*m[1][1]*m[2][0]
}

// Inverse returns m⁻¹, or ErrSingular when m has no inverse.
// Ill-conditioned but invertible matrices are inverted as-is; degenerate
// lattices must be caught by the caller's tolerance policy, not here.
func (m Matrix3) Inverse() (Matrix3, error) {
	var inv mat.Dense
	if err := inv.Inverse(m.Dense()); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return Matrix3{}, ErrSingular
		}
	}
	return matrixFromDense(&inv), nil
}

// IntMatrix3 is a 3×3 integer matrix, the supercell transformation type:
// target_lattice = Mᵀ · reference_lattice.
type IntMatrix3 [3][3]int

// Det returns the (exact, integer) determinant of m.
func (m IntMatrix3) Det() int {
	return m[0][0]*m[1][1]*m[2][2] -
		m[0][0]*m[1][2]*m[2][1] +
		m[0][1]*m[1][2]*m[2][0] -
		m[0][1]*m[1][0]*m[2][2] +
		m[0][2]*m[1][0]*m[2][1] -
		m[0][2]*m[1][1]*m[2][0]
}

// Column returns column j of m.
func (m IntMatrix3) Column(j int) [3]int {
	return [3]int{m[0][j], m[1][j], m[2][j]}
}

// ToMatrix3 converts m to a real-valued Matrix3.
func (m IntMatrix3) ToMatrix3() Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = float64(m[i][j])
		}
	}
	return out
}
