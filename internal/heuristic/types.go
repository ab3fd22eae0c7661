package heuristic

import (
	"sync"

	"github.com/msapastar/pastar/internal/coord"
	"github.com/msapastar/pastar/internal/costmodel"
	"github.com/msapastar/pastar/internal/pairalign"
	"github.com/msapastar/pastar/internal/seqstore"
)

// Heuristic is the sum of one pairalign.Table per sequence pair, built
// once up front from the fixed input sequences and cost model.
type Heuristic struct {
	tables []*pairalign.Table
}

// Build constructs every pairwise suffix-alignment table in parallel, one
// goroutine per pair joined by a sync.WaitGroup, and assembles the
// resulting Heuristic.
func Build(seqs *seqstore.Store, cm *costmodel.Model) *Heuristic {
	n := seqs.N()
	pairCount := n * (n - 1) / 2
	tables := make([]*pairalign.Table, pairCount)

	var wg sync.WaitGroup
	idx := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			wg.Add(1)
			go func(slot, i, j int) {
				defer wg.Done()
				tables[slot] = pairalign.Build(i, j, seqs.Sequence(i), seqs.Sequence(j), cm)
			}(idx, i, j)
			idx++
		}
	}
	wg.Wait()

	return &Heuristic{tables: tables}
}

// Eval returns the admissible lower-bound estimate of the remaining cost
// from c to the goal: the sum, over every sequence pair, of that pair's
// exact suffix-alignment cost at c's projection onto the pair's two
// dimensions.
func (h *Heuristic) Eval(c coord.Coord) int32 {
	var total int32
	for _, t := range h.tables {
		total += t.GetScore(int(c.Get(t.Pair[0])), int(c.Get(t.Pair[1])))
	}
	return total
}
