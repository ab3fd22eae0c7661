package backtrace_test

import (
	"context"
	"testing"

	"github.com/msapastar/pastar/internal/backtrace"
	"github.com/msapastar/pastar/internal/coord"
	"github.com/msapastar/pastar/internal/costmodel"
	"github.com/msapastar/pastar/internal/engine"
	"github.com/msapastar/pastar/internal/heuristic"
	"github.com/msapastar/pastar/internal/node"
	"github.com/msapastar/pastar/internal/seqstore"
	"github.com/stretchr/testify/require"
)

func TestReconstructIdenticalSequencesHasNoGaps(t *testing.T) {
	s, err := seqstore.Build([]string{"a", "b"}, [][]byte{[]byte("ACGT"), []byte("ACGT")})
	require.NoError(t, err)
	cm := costmodel.Nucleotide()
	cfg := engine.Config{Seqs: s, Cost: cm, Heuristic: heuristic.Build(s, cm)}

	res, err := engine.RunSerial(context.Background(), cfg)
	require.NoError(t, err)

	aligned, err := backtrace.Reconstruct(res.Final, res.Closed, s)
	require.NoError(t, err)
	require.Equal(t, "ACGT", aligned[0])
	require.Equal(t, "ACGT", aligned[1])
}

func TestReconstructCostMatchesFinalG(t *testing.T) {
	s, err := seqstore.Build([]string{"a", "b"}, [][]byte{[]byte("AC"), []byte("AGC")})
	require.NoError(t, err)
	cm := costmodel.Nucleotide()
	cfg := engine.Config{Seqs: s, Cost: cm, Heuristic: heuristic.Build(s, cm)}

	res, err := engine.RunSerial(context.Background(), cfg)
	require.NoError(t, err)

	aligned, err := backtrace.Reconstruct(res.Final, res.Closed, s)
	require.NoError(t, err)
	// Removing gaps must reproduce the original inputs exactly.
	require.Equal(t, "AC", stripGaps(aligned[0]))
	require.Equal(t, "AGC", stripGaps(aligned[1]))
	require.Len(t, aligned[0], len(aligned[1]))
	// Re-pricing the emitted columns must give the goal node's G.
	require.Equal(t, res.Final.G, alignmentCost(aligned, cm))
}

// alignmentCost sums the per-column pairwise costs the way node.Expand
// prices moves: substitution, single gap, or gap-gap for each pair.
func alignmentCost(aligned []string, cm *costmodel.Model) int32 {
	var total int32
	for c := 0; c < len(aligned[0]); c++ {
		for i := 0; i < len(aligned); i++ {
			for j := i + 1; j < len(aligned); j++ {
				a, b := aligned[i][c], aligned[j][c]
				switch {
				case a == '-' && b == '-':
					total += cm.GapGap()
				case a == '-' || b == '-':
					total += cm.GapCost()
				default:
					total += cm.Cost(a, b)
				}
			}
		}
	}
	return total
}

func TestReconstructTruncatesOnMergeAnomaly(t *testing.T) {
	// A final node whose parent was never committed to the closed set.
	final := node.Node{Pos: coord.FromSlice([]uint16{2, 2}), G: 4, ParentMask: 0b11}
	s, err := seqstore.Build([]string{"a", "b"}, [][]byte{[]byte("AC"), []byte("AC")})
	require.NoError(t, err)

	aligned, err := backtrace.Reconstruct(final, map[coord.Coord]node.Node{}, s)
	require.ErrorIs(t, err, backtrace.ErrMergeAnomaly)
	// Nothing could be walked past the unrecoverable final node, so the
	// recovered alignment is empty rather than erroring out entirely.
	require.Equal(t, "", aligned[0])
}

func stripGaps(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '-' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
