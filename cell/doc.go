// Package cell defines the Structure value object shared by all of cellkit:
// an ordered sequence of atoms (species number, optional mass, optional
// magnetic moment, fractional position) with one 3×3 lattice and a
// periodicity flag.
//
// Structures are immutable once constructed. Every accessor that returns a
// slice returns a fresh copy; deriving a different structure (supercell,
// primitive cell, trimmed cell) always builds a new instance. Atom order is
// significant — all index maps in cellkit are defined over it.
//
// Besides the container the package provides:
//
//   - Distance — shortest periodic-image distance between two atoms,
//     computed over a Delaunay-reduced basis (invariant under integer
//     translation of either fractional position)
//   - Dump — a diagnostic pretty-printer (lattice, positions, masses,
//     moments, optional index-map annotations and change markers)
//   - Symbol/Symbols — species symbols for diagnostics
package cell
