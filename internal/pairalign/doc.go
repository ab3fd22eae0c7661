// Package pairalign computes the admissible pairwise lower-bound tables
// the heuristic sums over: for one pair of sequences, the exact cost of
// optimally aligning every suffix pair, filled backward from the empty
// suffix with a three-way min-recurrence over gap and substitution costs.
package pairalign
