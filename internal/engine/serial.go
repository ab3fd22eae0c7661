package engine

import (
	"context"

	"github.com/msapastar/pastar/internal/coord"
	"github.com/msapastar/pastar/internal/node"
	"github.com/msapastar/pastar/internal/pqueue"
)

// RunSerial is the single-threaded specialization of Run: one open set,
// one closed set, no routing or cross-worker locking at all. It exists
// for small inputs and tests where the hash-partitioning machinery only
// adds overhead, and serves as the baseline Run's results are checked
// against for cost equality.
func RunSerial(ctx context.Context, cfg Config) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	open := pqueue.New()
	closed := make(map[coord.Coord]node.Node)

	origin := node.Node{Pos: cfg.Seqs.Initial()}
	origin.F = origin.G + cfg.Heuristic.Eval(origin.Pos)
	pqueue.Push(open, origin)

	final := cfg.Seqs.Final()
	var best node.Node
	haveBest := false
	var processed int64

	for open.Len() > 0 {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		n := pqueue.Pop(open)
		if existing, ok := closed[n.Pos]; ok && existing.G <= n.G {
			continue
		}
		closed[n.Pos] = n
		processed++

		if n.Pos.Equal(final) {
			if !haveBest || n.G < best.G {
				best = n
				haveBest = true
			}
			continue
		}

		for _, child := range childrenOf(n, cfg) {
			if existing, ok := closed[child.Pos]; ok && existing.G <= child.G {
				continue
			}
			pqueue.Push(open, child)
		}
	}

	if !haveBest {
		return nil, ErrNoSolution
	}
	return &Result{Final: best, Closed: closed, Processed: []int64{processed}}, nil
}
