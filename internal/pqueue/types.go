package pqueue

import (
	"container/heap"

	"github.com/msapastar/pastar/internal/node"
)

// Queue is a min-heap of node.Node ordered by ascending F, with a
// lexicographic tiebreak on Pos when two nodes share the same F. A plain
// slice implementing heap.Interface, storing values directly since
// node.Node is small and comparable.
type Queue []node.Node

// Len implements sort.Interface.
func (q Queue) Len() int { return len(q) }

// Less implements sort.Interface: lower F wins; ties break lexicographically
// by position.
func (q Queue) Less(i, j int) bool {
	if q[i].F != q[j].F {
		return q[i].F < q[j].F
	}
	return q[i].Pos.Less(q[j].Pos)
}

// Swap implements sort.Interface.
func (q Queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push implements heap.Interface. Called by heap.Push; x must be a node.Node.
func (q *Queue) Push(x interface{}) { *q = append(*q, x.(node.Node)) }

// Pop implements heap.Interface. Called by heap.Pop.
func (q *Queue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// New returns an empty, heap-initialized Queue.
func New() *Queue {
	q := make(Queue, 0)
	heap.Init(&q)
	return &q
}

// Push pushes n onto the queue, preserving the heap invariant. A worker may
// push the same position multiple times with different F values (lazy
// decrease-key); the caller is responsible for discarding stale pops
// against its closed set.
func Push(q *Queue, n node.Node) { heap.Push(q, n) }

// Pop removes and returns the lowest-F node. Panics if the queue is empty;
// callers must check Len() first.
func Pop(q *Queue) node.Node { return heap.Pop(q).(node.Node) }
