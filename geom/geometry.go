// Package geom: lattice parameter and angle conversions.
package geom

import "math"

// degPerRad converts radians to degrees.
const degPerRad = 180.0 / math.Pi

// CellParameters returns the basis vector lengths (a, b, c) of a lattice.
func CellParameters(lattice Matrix3) (a, b, c float64) {
	return lattice[0].Norm(), lattice[1].Norm(), lattice[2].Norm()
}

// CellAngles returns the lattice angles in degrees:
// α between b and c, β between c and a, γ between a and b.
func CellAngles(lattice Matrix3) (alpha, beta, gamma float64) {
	a, b, c := CellParameters(lattice)
	alpha = math.Acos(lattice[1].Dot(lattice[2])/(b*c)) * degPerRad
	beta = math.Acos(lattice[2].Dot(lattice[0])/(c*a)) * degPerRad
	gamma = math.Acos(lattice[0].Dot(lattice[1])/(a*b)) * degPerRad
	return alpha, beta, gamma
}

// CellMatrix builds a lattice from lengths a, b, c and angles α, β, γ
// (degrees), with a along +x and b in the xy-plane. Returns
// ErrBadCellParameters when no real cell has those parameters
// (non-positive lengths, degenerate angles, or an imaginary c component).
func CellMatrix(a, b, c, alpha, beta, gamma float64) (Matrix3, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return Matrix3{}, ErrBadCellParameters
	}
	alpha /= degPerRad
	beta /= degPerRad
	gamma /= degPerRad

	b1 := math.Cos(gamma)
	b2 := math.Sin(gamma)
	if b2 == 0 {
		return Matrix3{}, ErrBadCellParameters
	}
	c1 := math.Cos(beta)
	c2 := (2*math.Cos(alpha) + b1*b1 + b2*b2 - 2*b1*c1 - 1) / (2 * b2)
	c3sq := 1 - c1*c1 - c2*c2
	if c3sq < 0 {
		return Matrix3{}, ErrBadCellParameters
	}
	c3 := math.Sqrt(c3sq)

	return Matrix3{
		{a, 0, 0},
		{b1 * b, b2 * b, 0},
		{c1 * c, c2 * c, c3 * c},
	}, nil
}
