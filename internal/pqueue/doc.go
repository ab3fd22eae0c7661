// Package pqueue is the per-worker open-set priority queue: a container/heap
// min-heap ordered by f-cost with a lexicographic-position tiebreak and
// lazy decrease-key (stale entries are pushed over rather than updated in
// place, and discarded on pop by the caller).
package pqueue
