// Package geom provides the small, fixed-size linear algebra shared by the
// cellkit packages: 3-vectors, 3×3 row-vector lattice matrices, integer
// transformation matrices, and lattice parameter/angle conversions.
//
// Conventions (used consistently across cellkit):
//
//   - A lattice is a Matrix3 whose ROWS are the basis vectors a, b, c.
//   - Fractional positions are row vectors; the cartesian position of a
//     fractional row vector v under lattice L is v·L (Vec3.MulMatrix).
//   - Batched N×3 position arithmetic goes through gonum's mat.Dense
//     (RowsDense / MulRows), so the hot paths are dense matrix products
//     rather than per-atom scalar loops.
//
// All operations are pure functions of their inputs; there is no package
// state and no mutation of receivers.
package geom
