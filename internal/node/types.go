package node

import (
	"github.com/msapastar/pastar/internal/coord"
	"github.com/msapastar/pastar/internal/costmodel"
	"github.com/msapastar/pastar/internal/seqstore"
)

// Node is a single lattice vertex visited during search: its position, the
// exact cost accumulated from the origin (G), the current priority-queue
// key (F), and the bitmask recording which dimensions the move from its
// parent advanced. F equals G right after Expand; the engine adds the
// heuristic estimate before pushing a child onto a worker's open set.
type Node struct {
	Pos        coord.Coord
	G          int32
	F          int32
	ParentMask uint8
}

// ParentPos recovers the position this node was expanded from, by
// retreating one step along every dimension ParentMask advanced.
func (n Node) ParentPos() coord.Coord {
	return n.Pos.Retreated(n.ParentMask)
}

// Expand returns every valid child of n: one per non-empty subset of the
// lattice's dimensions that does not step past the end of any sequence,
// priced as the sum of pairwise substitution/gap costs over all sequence
// pairs.
func Expand(n Node, seqs *seqstore.Store, cm *costmodel.Model) []Node {
	dims := n.Pos.Arity()
	limit := 1 << uint(dims)

	children := make([]Node, 0, limit-1)
	for mask := 1; mask < limit; mask++ {
		next := n.Pos.Advanced(uint8(mask))
		if !withinBounds(next, seqs) {
			continue
		}
		cost := moveCost(n.Pos, uint8(mask), dims, seqs, cm)
		g := n.G + cost
		children = append(children, Node{
			Pos:        next,
			G:          g,
			F:          g,
			ParentMask: uint8(mask),
		})
	}
	return children
}

// withinBounds reports whether pos does not exceed any sequence's length
// along any dimension.
func withinBounds(pos coord.Coord, seqs *seqstore.Store) bool {
	for i := 0; i < pos.Arity(); i++ {
		if int(pos.Get(i)) > seqs.Len(i) {
			return false
		}
	}
	return true
}

// moveCost sums, over every pair of dimensions, the cost of the edge that
// pair contributes: a substitution when both dimensions
// advance, a single-gap when exactly one does, and gap-gap when neither
// does. from is the pre-move position, so from.Get(i) is the index of the
// residue consumed along dimension i when mask's bit i is set.
func moveCost(from coord.Coord, mask uint8, dims int, seqs *seqstore.Store, cm *costmodel.Model) int32 {
	var total int32
	for i := 0; i < dims; i++ {
		bi := mask&(1<<uint(i)) != 0
		for j := i + 1; j < dims; j++ {
			bj := mask&(1<<uint(j)) != 0
			switch {
			case bi && bj:
				total += cm.Cost(seqs.Char(i, int(from.Get(i))), seqs.Char(j, int(from.Get(j))))
			case bi && !bj:
				total += cm.GapCost()
			case !bi && bj:
				total += cm.GapCost()
			default:
				total += cm.GapGap()
			}
		}
	}
	return total
}
