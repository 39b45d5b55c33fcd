// Package shortest computes, for every (supercell atom, primitive atom)
// pair, the set of shortest periodic displacement vectors between them —
// with multiplicity when several images tie for the minimum length.
//
// The supercell lattice is Delaunay-reduced first (cellkit/reduce), every
// position is folded into (−0.5, 0.5] fractional coordinates of the reduced
// basis, and each pair difference is tried against the 27 integer offsets
// {-1,0,1}³. The reduction is what makes this exhaustive: over a reduced
// basis the globally shortest image of any folded difference is provably
// among those 27 candidates.
//
// The whole candidate set — an (nS·nP·27)×3 matrix — is pushed through two
// dense products (cartesian lengths, primitive-basis conversion) rather than
// a scalar pair loop, keeping thousands of atoms tractable.
//
// Vectors point FROM the primitive atom TO the supercell atom and are
// returned in primitive-cell fractional coordinates. A Table is immutable
// once computed.
package shortest
