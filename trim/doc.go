// Package trim folds a periodic point set into a target sublattice and
// merges atoms that land on the same position.
//
// Given relative axes R (target cell expressed in the reference cell's
// lattice coordinates, target_lattice = Rᵀ·lattice), Trim re-expresses every
// atom in the target basis, folds it into [0,1), and walks the atoms in
// input order keeping the first representative of every distinct position.
// An atom within tolerance (cartesian distance, minimum image) of an
// already-kept atom is recorded as a duplicate of it.
//
// Both the supercell and the primitive-cell builders are thin layers over
// this operation.
//
// The duplicate scan is intentionally order-dependent: each atom is compared
// only against atoms already kept, in input order, exactly mirroring the
// tolerance behavior of the reference implementation. Near the tolerance
// boundary, reordering input atoms can change which representative survives.
package trim
