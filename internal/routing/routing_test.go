package routing_test

import (
	"testing"

	"github.com/msapastar/pastar/internal/coord"
	"github.com/msapastar/pastar/internal/routing"
	"github.com/stretchr/testify/require"
)

func TestParseHashTypeRoundTrips(t *testing.T) {
	for _, name := range []string{"fzorder", "pzorder", "fsum", "psum"} {
		h, err := routing.ParseHashType(name)
		require.NoError(t, err)
		require.Equal(t, name, h.String())
	}
}

func TestParseHashTypeRejectsUnknown(t *testing.T) {
	_, err := routing.ParseHashType("bogus")
	require.ErrorIs(t, err, routing.ErrUnknownHashType)
}

func TestOwnerIsWithinSize(t *testing.T) {
	c := coord.FromSlice([]uint16{3, 5, 7})
	for _, h := range []routing.HashType{routing.FSum, routing.PSum, routing.FZorder, routing.PZorder} {
		owner := routing.Owner(c, h, 4, 0, nil)
		require.GreaterOrEqual(t, owner, 0)
		require.Less(t, owner, 4)
	}
}

func TestOwnerAppliesThreadMapIndirection(t *testing.T) {
	c := coord.FromSlice([]uint16{0, 0})
	threadMap := []int{9}
	owner := routing.Owner(c, routing.FSum, 4, 0, threadMap)
	require.Equal(t, 9, owner)
}

func TestHybridMapLayout(t *testing.T) {
	m := routing.HybridMap(2, 3, 1, 2)
	require.Equal(t, []int{0, 0, 0, 1, 1, 1, 2, 2}, m)
}
