// Package supercell builds a supercell from a unit cell and an integer 3×3
// transformation matrix M (supercell lattice = Mᵀ·unit lattice).
//
// Construction happens in two stages, which is what makes arbitrary
// (non-diagonal, non-orthogonal) matrices work:
//
//  1. Replicate the unit cell into a "surrounding" n1×n2×n3 simple supercell
//     guaranteed to contain the target lattice. The multiplicities come from
//     the 8 integer corner combinations of M's columns, so they are exact.
//  2. Trim the simple supercell against the target lattice (cellkit/trim),
//     merging atoms equivalent under the target periodicity.
//
// The resulting atom count must equal unitcell atoms × det(M); any mismatch
// means atoms merged that should not have (bad geometry or tolerance) and
// construction fails with the raw mapping table attached for diagnosis.
//
// Index-map conventions (fixed — downstream consumers key off them):
//
//   - UnitcellToSupercell: unit atom i ↦ supercell atom i·multiplicity, the
//     FIRST replica emitted for i (replication runs axis-0 fastest).
//   - SupercellToUnitcell: supercell atom ↦ i·multiplicity for its source
//     unit atom i (i.e. into unitcell-representative index space).
//   - UnitcellToUnitcell: inverse of UnitcellToSupercell, renumbered 0..N−1.
package supercell
