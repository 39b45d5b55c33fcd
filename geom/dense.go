// Package geom: bridging between the fixed-size value types and gonum's
// mat.Dense, so position arrays are processed as single N×3 products.
package geom

import "gonum.org/v1/gonum/mat"

// Dense returns m as a freshly allocated 3×3 mat.Dense.
func (m Matrix3) Dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}

// matrixFromDense reads a 3×3 mat.Dense back into a Matrix3.
func matrixFromDense(d *mat.Dense) Matrix3 {
	var m Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = d.At(i, j)
		}
	}
	return m
}

// RowsDense packs vs into an N×3 mat.Dense (one row per vector).
// Returns nil for an empty slice (mat.Dense has no zero-row form).
func RowsDense(vs []Vec3) *mat.Dense {
	if len(vs) == 0 {
		return nil
	}
	data := make([]float64, 0, 3*len(vs))
	for _, v := range vs {
		data = append(data, v[0], v[1], v[2])
	}
	return mat.NewDense(len(vs), 3, data)
}

// DenseRows unpacks an N×3 mat.Dense into a slice of Vec3.
func DenseRows(d *mat.Dense) []Vec3 {
	if d == nil {
		return nil
	}
	n, _ := d.Dims()
	vs := make([]Vec3, n)
	for i := 0; i < n; i++ {
		vs[i] = Vec3{d.At(i, 0), d.At(i, 1), d.At(i, 2)}
	}
	return vs
}

// MulRows returns the batched row-vector products vs[i]·m as one N×3
// dense multiplication. The input slice is not modified.
func MulRows(vs []Vec3, m Matrix3) []Vec3 {
	if len(vs) == 0 {
		return nil
	}
	var out mat.Dense
	out.Mul(RowsDense(vs), m.Dense())
	return DenseRows(&out)
}
