package backtrace

import (
	"errors"
	"strings"

	"github.com/msapastar/pastar/internal/coord"
	"github.com/msapastar/pastar/internal/node"
	"github.com/msapastar/pastar/internal/seqstore"
)

// ErrMergeAnomaly is returned when the parent chain walks off the edge of
// the merged closed set before reaching the origin. Under the engine's
// termination policy this should not happen, but rather than panic,
// Reconstruct surfaces it: callers get the trailing part of the
// alignment it could recover (from the node whose parent is missing up to
// the goal), plus this sentinel.
var ErrMergeAnomaly = errors.New("backtrace: parent node missing from merged closed set")

// Reconstruct walks final's parent chain back to the origin through
// closed, then emits one aligned string per sequence: a residue wherever
// that sequence's dimension advanced on a given step, a gap ('-')
// otherwise. If the chain cannot be walked all the way to the origin, the
// partial alignment recovered so far is returned alongside
// ErrMergeAnomaly.
func Reconstruct(final node.Node, closed map[coord.Coord]node.Node, seqs *seqstore.Store) ([]string, error) {
	path, err := walk(final, closed)
	return align(path, seqs), err
}

// walk returns the node sequence from origin to final, oldest first.
func walk(final node.Node, closed map[coord.Coord]node.Node) ([]node.Node, error) {
	rev := []node.Node{final}
	cur := final
	// Only the origin has an empty ParentMask; G alone cannot identify it
	// because zero-cost moves leave G at 0 along a path.
	for cur.ParentMask != 0 {
		parentPos := cur.ParentPos()
		parent, ok := closed[parentPos]
		if !ok {
			reverseInPlace(rev)
			return rev, ErrMergeAnomaly
		}
		rev = append(rev, parent)
		cur = parent
	}
	reverseInPlace(rev)
	return rev, nil
}

func reverseInPlace(path []node.Node) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}

// align emits the gapped alignment implied by a path of nodes walked from
// the origin: step k advances whichever dimensions path[k].ParentMask set
// on the move from path[k-1].
func align(path []node.Node, seqs *seqstore.Store) []string {
	n := seqs.N()
	builders := make([]strings.Builder, n)
	for k := 1; k < len(path); k++ {
		prev, curr := path[k-1], path[k]
		for i := 0; i < n; i++ {
			if curr.Pos.Get(i) > prev.Pos.Get(i) {
				builders[i].WriteByte(seqs.Char(i, int(prev.Pos.Get(i))))
			} else {
				builders[i].WriteByte('-')
			}
		}
	}

	out := make([]string, n)
	for i := range builders {
		out[i] = builders[i].String()
	}
	return out
}

// Similarity returns the fraction of columns in an alignment where every
// sequence carries the same, non-gap residue.
func Similarity(aligned []string) float64 {
	if len(aligned) == 0 || len(aligned[0]) == 0 {
		return 0
	}
	cols := len(aligned[0])
	matches := 0
	for c := 0; c < cols; c++ {
		first := aligned[0][c]
		allMatch := first != '-'
		for _, seq := range aligned[1:] {
			if seq[c] != first {
				allMatch = false
				break
			}
		}
		if allMatch {
			matches++
		}
	}
	return float64(matches) / float64(cols)
}
