// Package primitive extracts a primitive cell from a supercell through a
// real-valued 3×3 transformation matrix F (primitive lattice =
// Fᵀ·supercell lattice), and builds the atom index maps and the
// shortest-vector table between the two.
//
// Extraction is a trim (cellkit/trim) of the supercell against F. The
// supercell→primitive map is then recovered by brute-force fractional
// matching: each supercell atom, expressed in primitive-lattice coordinates,
// must coincide (minimum image, component-wise tolerance) with one of the
// kept primitive atoms; the first match wins. A supercell atom with no
// match means the matrix and tolerance are mutually inconsistent, and the
// build fails.
//
// Index-map conventions:
//
//   - PrimitiveToSupercell: primitive atom k ↦ its source supercell atom.
//   - SupercellToPrimitive: supercell atom ↦ the SUPERCELL index of the
//     primitive atom it is equivalent to (an entry of PrimitiveToSupercell).
//   - PrimitiveToPrimitive: supercell index of a primitive atom ↦ its
//     0-based index within the primitive cell.
package primitive
