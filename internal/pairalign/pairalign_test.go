package pairalign_test

import (
	"testing"

	"github.com/msapastar/pastar/internal/costmodel"
	"github.com/msapastar/pastar/internal/pairalign"
	"github.com/stretchr/testify/require"
)

func TestBuildIdenticalSequencesScoresZero(t *testing.T) {
	cm := costmodel.Nucleotide()
	tbl := pairalign.Build(0, 1, []byte("ACGT"), []byte("ACGT"), cm)
	require.EqualValues(t, 0, tbl.FinalScore())
}

func TestBuildEmptySuffixPairsCostZero(t *testing.T) {
	cm := costmodel.Nucleotide()
	tbl := pairalign.Build(0, 1, []byte("AC"), []byte("AG"), cm)
	require.EqualValues(t, 0, tbl.GetScore(2, 2))
}

func TestBuildBorderGrowsByGapCost(t *testing.T) {
	cm := costmodel.Nucleotide()
	tbl := pairalign.Build(0, 1, []byte("AC"), []byte("AG"), cm)
	// Aligning the tail of s1 ("C") against the exhausted s2 costs one gap.
	require.EqualValues(t, cm.GapCost(), tbl.GetScore(1, 2))
	// Aligning the exhausted s1 against the tail of s2 ("G") costs one gap.
	require.EqualValues(t, cm.GapCost(), tbl.GetScore(2, 1))
}

func TestBuildMismatchPrefersCheapestOption(t *testing.T) {
	cm := costmodel.Nucleotide()
	tbl := pairalign.Build(0, 1, []byte("A"), []byte("C"), cm)
	// Substituting costs 1 (mismatch); double-gapping costs gap+gap = 4.
	// The optimal full alignment is the single substitution.
	require.EqualValues(t, 1, tbl.FinalScore())
}

func TestBuildHeuristicIsAdmissibleLowerBoundOnMatch(t *testing.T) {
	cm := costmodel.PAM250()
	tbl := pairalign.Build(0, 1, []byte("ACDE"), []byte("ACDE"), cm)
	// Four matched PAM250 diagonal costs, no gaps needed.
	require.EqualValues(t, 15+5+13+13, tbl.FinalScore())
}
