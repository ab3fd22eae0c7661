package node_test

import (
	"testing"

	"github.com/msapastar/pastar/internal/coord"
	"github.com/msapastar/pastar/internal/costmodel"
	"github.com/msapastar/pastar/internal/node"
	"github.com/msapastar/pastar/internal/seqstore"
	"github.com/stretchr/testify/require"
)

func twoSeqStore(t *testing.T) *seqstore.Store {
	t.Helper()
	s, err := seqstore.Build([]string{"s1", "s2"}, [][]byte{[]byte("AC"), []byte("AG")})
	require.NoError(t, err)
	return s
}

func TestExpandFromOriginProducesAllThreeMoves(t *testing.T) {
	s := twoSeqStore(t)
	cm := costmodel.Nucleotide()
	origin := node.Node{Pos: s.Initial()}

	children := node.Expand(origin, s, cm)
	require.Len(t, children, 3)

	byMask := make(map[uint8]node.Node, len(children))
	for _, c := range children {
		byMask[c.ParentMask] = c
	}

	// Advance only sequence 0: gap against sequence 1.
	require.EqualValues(t, 2, byMask[1].G)
	// Advance only sequence 1: gap against sequence 0.
	require.EqualValues(t, 2, byMask[2].G)
	// Advance both: substitution of 'A' against 'A', a match under the
	// identity nucleotide model, costing 0.
	require.EqualValues(t, 0, byMask[3].G)
	require.True(t, byMask[3].Pos.Equal(coord.FromSlice([]uint16{1, 1})))
}

func TestExpandRejectsMovesPastSequenceEnd(t *testing.T) {
	s := twoSeqStore(t)
	cm := costmodel.Nucleotide()
	final := node.Node{Pos: s.Final(), G: 100}

	children := node.Expand(final, s, cm)
	require.Empty(t, children)
}

func TestExpandPartialBoundary(t *testing.T) {
	s := twoSeqStore(t)
	cm := costmodel.Nucleotide()
	// Sequence 0 exhausted, sequence 1 has one residue left: only the
	// move that advances sequence 1 alone is legal.
	n := node.Node{Pos: coord.FromSlice([]uint16{2, 1})}

	children := node.Expand(n, s, cm)
	require.Len(t, children, 1)
	require.EqualValues(t, 2, children[0].ParentMask)
}

func TestParentPosRoundTrips(t *testing.T) {
	s := twoSeqStore(t)
	cm := costmodel.Nucleotide()
	origin := node.Node{Pos: s.Initial()}

	for _, c := range node.Expand(origin, s, cm) {
		require.True(t, c.ParentPos().Equal(origin.Pos))
	}
}

func TestMoveCostSumsPairwiseAcrossThreeSequences(t *testing.T) {
	s, err := seqstore.Build([]string{"a", "b", "c"}, [][]byte{[]byte("A"), []byte("A"), []byte("C")})
	require.NoError(t, err)
	cm := costmodel.Nucleotide()
	origin := node.Node{Pos: s.Initial()}

	children := node.Expand(origin, s, cm)
	var full node.Node
	for _, c := range children {
		if c.ParentMask == 0b111 {
			full = c
		}
	}
	// Pairs (0,1): A-A=0, (0,2): A-C=1, (1,2): A-C=1.
	require.EqualValues(t, 2, full.G)
}
