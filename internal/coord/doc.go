// Package coord defines the fixed-arity lattice coordinate used throughout
// the parallel A* search: an N-tuple of non-negative indices, one per input
// sequence, with the routing-friendly reductions (sum, partial sum,
// Z-order) that the hash-partitioning scheme is built on.
//
// N is not a Go type parameter: the maximum supported arity (8) is fixed
// at build time and every Coord carries its own live arity, so a single
// binary handles any N in [2, 8] without per-N monomorphization.
package coord
