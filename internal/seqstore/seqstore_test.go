package seqstore_test

import (
	"testing"

	"github.com/msapastar/pastar/internal/coord"
	"github.com/msapastar/pastar/internal/seqstore"
	"github.com/stretchr/testify/require"
)

func TestBuildRejectsTooFewSequences(t *testing.T) {
	_, err := seqstore.Build([]string{"only"}, [][]byte{[]byte("ACGT")})
	require.ErrorIs(t, err, seqstore.ErrTooFewSequences)
}

func TestBuildRejectsTooManySequences(t *testing.T) {
	names := make([]string, coord.MaxDims+1)
	bodies := make([][]byte, coord.MaxDims+1)
	for i := range bodies {
		bodies[i] = []byte("A")
	}
	_, err := seqstore.Build(names, bodies)
	require.ErrorIs(t, err, seqstore.ErrTooManySequences)
}

func TestBuildRejectsEmptySequence(t *testing.T) {
	_, err := seqstore.Build([]string{"a", "b"}, [][]byte{[]byte("ACGT"), {}})
	require.ErrorIs(t, err, seqstore.ErrEmptySequence)
}

func TestBuildCopiesBodiesDefensively(t *testing.T) {
	body := []byte("ACGT")
	s, err := seqstore.Build([]string{"a", "b"}, [][]byte{body, []byte("ACGT")})
	require.NoError(t, err)

	body[0] = 'X'
	require.Equal(t, byte('A'), s.Char(0, 0))
}

func TestInitialAndFinalCoords(t *testing.T) {
	s, err := seqstore.Build([]string{"a", "b", "c"}, [][]byte{[]byte("AC"), []byte("ACGT"), []byte("A")})
	require.NoError(t, err)

	require.True(t, s.Initial().Equal(coord.FromSlice([]uint16{0, 0, 0})))
	require.True(t, s.Final().Equal(coord.FromSlice([]uint16{2, 4, 1})))
	require.Equal(t, 3, s.N())
	require.Equal(t, 2, s.Len(0))
	require.Equal(t, "b", s.Name(1))
}
