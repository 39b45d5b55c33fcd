// Package cellkit builds derived crystal-lattice structures — supercells
// and primitive cells — and the shortest periodic-image vector tables
// between them.
//
// 🚀 What is cellkit?
//
//	A deterministic, pure-computation library for the geometry underneath
//	phonon / lattice-dynamics preprocessing:
//		• Structure value objects: species, masses, magnetic moments,
//		  fractional positions and a shared 3×3 lattice
//		• Supercell construction from arbitrary integer 3×3 matrices
//		  (non-diagonal and non-orthogonal included)
//		• Primitive-cell extraction with bidirectional atom index maps
//		• Delaunay lattice reduction, so 27-image neighbor searches are
//		  provably exhaustive
//		• Batched shortest-vector tables with tie multiplicities
//
// ✨ Why choose cellkit?
//
//   - Numerically exact under periodic boundary conditions — every
//     tolerance is explicit, every failure is a sentinel error
//   - Immutable value objects – build once, read everywhere
//   - Batched arithmetic – the O(n²·27) pair search runs as a handful of
//     dense matrix products, not scalar loops
//
// Everything is organized under six subpackages:
//
//	geom/      — Vec3/Matrix3 algebra, lattice parameters & angles
//	reduce/    — Delaunay basis reduction (pluggable Reducer contract)
//	cell/      — the Structure value object, pair distances, diagnostics
//	trim/      — fold-and-deduplicate against a target sublattice
//	supercell/ — unit cell × integer matrix → supercell + index maps
//	primitive/ — supercell × real matrix → primitive cell + index maps
//	shortest/  — per-pair shortest periodic-image vectors with ties
//
//	go get github.com/katalvlaran/cellkit
package cellkit
