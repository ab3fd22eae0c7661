// Package node defines the search node and its neighbor expansion:
// advancing any non-empty subset of the N sequences by one residue and
// pricing the move as the sum of pairwise substitution/gap costs over all
// C(N,2) sequence pairs.
package node
