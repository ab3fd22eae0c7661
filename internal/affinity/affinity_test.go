package affinity_test

import (
	"testing"

	"github.com/msapastar/pastar/internal/affinity"
	"github.com/stretchr/testify/require"
)

func TestPinRejectsNegativeCPU(t *testing.T) {
	require.ErrorIs(t, affinity.Pin(-1), affinity.ErrBadCPU)
}

func TestPinAcceptsCPUZero(t *testing.T) {
	// Every machine running this test has a CPU 0.
	require.NoError(t, affinity.Pin(0))
}
