// Package reduce implements Delaunay (Selling) reduction of a 3×3 lattice
// basis.
//
// 🚀 Why reduce a basis?
//
//	A reduced basis is numerically well-conditioned: all pairwise dot
//	products of its basis vectors are non-positive (within tolerance).
//	Under that guarantee, the shortest periodic image of any vector is
//	always found among the 27 translations {-1,0,1}³ of its folded
//	representative — which is what makes the neighbor search in
//	cellkit/shortest exhaustive rather than heuristic.
//
// The algorithm is the classical one: extend the basis with
// b3 = −(a+b+c), repeatedly flip the first extended vector pair whose Gram
// entry is positive, then pick the three shortest linearly independent
// vectors out of the seven candidates (four extended vectors plus the three
// pairwise sums of the basis).
//
// The Reducer function type is the pluggable backend contract: any routine
// with the same signature and the same 27-image guarantee (for example an
// external symmetry library's Niggli or Delaunay reduction) can be swapped
// in wherever cellkit accepts a Reducer.
package reduce
