package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/msapastar/pastar/internal/seqstore"
)

// Sentinel errors returned while reading or writing FASTA files.
var (
	// ErrNoRecords indicates the file contained no sequence data at all.
	ErrNoRecords = errors.New("fasta: no sequence records found")

	// ErrMismatchedLengths indicates Write was given names and aligned
	// bodies of different counts.
	ErrMismatchedLengths = errors.New("fasta: names and aligned sequences must have equal length")
)

// Read parses a FASTA file into a seqstore.Store. Blank lines flush the
// sequence accumulated so far; every other non-header line is uppercased
// and appended to the current record. A record with no ">name" header
// line before it keeps an empty name. Arity validation (2–8 sequences)
// happens inside seqstore.Build.
func Read(path string) (*seqstore.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fasta: opening %q: %w", path, err)
	}
	defer f.Close()

	var names []string
	var bodies [][]byte
	var name string
	var body strings.Builder

	flush := func() {
		if body.Len() == 0 {
			return
		}
		names = append(names, name)
		bodies = append(bodies, []byte(strings.ToUpper(body.String())))
		body.Reset()
		name = ""
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, ">"):
			flush()
			name = strings.TrimPrefix(line, ">")
		default:
			body.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fasta: reading %q: %w", path, err)
	}
	flush()

	if len(bodies) == 0 {
		return nil, ErrNoRecords
	}
	return seqstore.Build(names, bodies)
}

// Write emits one FASTA record per (name, aligned body) pair to path.
func Write(path string, names []string, aligned []string) error {
	if len(names) != len(aligned) {
		return ErrMismatchedLengths
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fasta: creating %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, name := range names {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", name, aligned[i]); err != nil {
			return fmt.Errorf("fasta: writing %q: %w", path, err)
		}
	}
	return w.Flush()
}
