// Package heuristic sums precomputed pairwise suffix-alignment tables into
// the admissible lower-bound estimate the search uses to guide expansion:
// h(c) = sum over all sequence pairs of that pair's exact remaining cost
// from c's projection onto the pair. A Heuristic is an explicit,
// immutable value handed to the engine by pointer; there is no
// package-level state.
package heuristic
