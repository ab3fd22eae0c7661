package printer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/msapastar/pastar/printer"
	"github.com/stretchr/testify/require"
)

func TestPrintIncludesNamesAndSimilarity(t *testing.T) {
	var buf bytes.Buffer
	err := printer.Print(&buf, []string{"seq1", "seq2"}, []string{"ACGT", "ACGA"})
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.Contains(out, "seq1"))
	require.True(t, strings.Contains(out, "seq2"))
	require.True(t, strings.Contains(out, "similarity:"))
}

func TestPrintHandlesEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	err := printer.Print(&buf, nil, nil)
	require.NoError(t, err)
	require.Empty(t, buf.String())
}
