// Package pastar (github.com/msapastar/pastar) documents a hash-partitioned
// parallel A* solver for multiple sequence alignment; the command itself
// lives in cmd/pastar.
//
// Given 2–8 input sequences, pastar treats their simultaneous alignment as
// a shortest-path search over an N-dimensional lattice: every coordinate
// is a tuple of per-sequence progress indices, every edge advances some
// non-empty subset of sequences by one residue, and edge cost is the
// sum-of-pairs substitution/gap cost of that move. The search itself is
// split across worker goroutines by a configurable spatial hash of each
// coordinate (sum, partial sum, or Z-order, each optionally right-shifted
// and remapped through a hybrid-CPU thread table), so each worker owns a
// disjoint slice of the lattice and only needs to route, never share,
// queue state.
//
// Package layout:
//
//	internal/affinity    — worker OS-thread CPU pinning
//	internal/coord      — the fixed-arity lattice coordinate type
//	internal/costmodel   — pluggable substitution-matrix + gap cost model
//	internal/node        — lattice node and neighbor expansion
//	internal/pairalign   — per-pair admissible suffix-alignment tables
//	internal/heuristic   — sum-of-pairs admissible heuristic
//	internal/pqueue      — per-worker open-set priority queue
//	internal/routing     — coordinate-to-worker hash partitioning
//	internal/engine      — the parallel (and serial) search itself
//	internal/backtrace   — goal-to-origin path reconstruction
//	internal/seqstore    — immutable input sequence storage
//	internal/config      — CLI-assembled, validated run configuration
//	fasta/               — FASTA record I/O
//	printer/             — terminal alignment rendering
//	timing/              — phase-scoped stopwatch logging
//	cmd/pastar/          — the command-line entry point
package pastar
