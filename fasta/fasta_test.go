package fasta_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/msapastar/pastar/fasta"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.fasta")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadParsesMultiLineRecordsAndUppercases(t *testing.T) {
	path := writeTempFile(t, ">seq1\nacgt\ngg\n\n>seq2\nACGTGG\n")
	store, err := fasta.Read(path)
	require.NoError(t, err)
	require.Equal(t, 2, store.N())
	require.Equal(t, "seq1", store.Name(0))
	require.Equal(t, []byte("ACGTGG"), store.Sequence(0))
	require.Equal(t, []byte("ACGTGG"), store.Sequence(1))
}

func TestReadRejectsEmptyFile(t *testing.T) {
	path := writeTempFile(t, "")
	_, err := fasta.Read(path)
	require.ErrorIs(t, err, fasta.ErrNoRecords)
}

func TestWriteEmitsOneRecordPerName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.fasta")
	require.NoError(t, fasta.Write(path, []string{"a", "b"}, []string{"AC-GT", "ACGGT"}))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), ">a\nAC-GT\n")
	require.Contains(t, string(contents), ">b\nACGGT\n")
}

func TestWriteRejectsMismatchedLengths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.fasta")
	err := fasta.Write(path, []string{"a"}, []string{"AC", "GT"})
	require.ErrorIs(t, err, fasta.ErrMismatchedLengths)
}
