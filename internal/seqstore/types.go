// Package seqstore holds the immutable-after-load input sequences, their
// names, and the lattice's initial/final coordinates derived from them:
// a small, validated, read-only value handed to downstream packages.
package seqstore

import (
	"errors"

	"github.com/msapastar/pastar/internal/coord"
)

// Sentinel errors for building a Store.
var (
	// ErrTooFewSequences indicates fewer than 2 sequences were supplied.
	ErrTooFewSequences = errors.New("seqstore: at least 2 sequences are required")

	// ErrTooManySequences indicates more than coord.MaxDims sequences were supplied.
	ErrTooManySequences = errors.New("seqstore: at most 8 sequences are supported")

	// ErrEmptySequence indicates one of the supplied sequences has zero length.
	ErrEmptySequence = errors.New("seqstore: sequences must be non-empty")
)

// Store is the immutable collection of input sequences being aligned.
type Store struct {
	seqs  [][]byte
	names []string
}

// Build validates and assembles a Store from parallel name/body slices.
// names and bodies must have the same, non-zero length between 2 and
// coord.MaxDims; every body must be non-empty.
func Build(names []string, bodies [][]byte) (*Store, error) {
	n := len(bodies)
	if n < 2 {
		return nil, ErrTooFewSequences
	}
	if n > coord.MaxDims {
		return nil, ErrTooManySequences
	}
	for _, b := range bodies {
		if len(b) == 0 {
			return nil, ErrEmptySequence
		}
	}

	s := &Store{
		seqs:  make([][]byte, n),
		names: make([]string, n),
	}
	for i := range bodies {
		s.seqs[i] = append([]byte(nil), bodies[i]...)
		if i < len(names) {
			s.names[i] = names[i]
		}
	}
	return s, nil
}

// N returns the number of sequences (the lattice's arity).
func (s *Store) N() int { return len(s.seqs) }

// Len returns the length of sequence i.
func (s *Store) Len(i int) int { return len(s.seqs[i]) }

// Char returns the residue at position pos of sequence i.
func (s *Store) Char(i, pos int) byte { return s.seqs[i][pos] }

// Name returns the recorded header for sequence i.
func (s *Store) Name(i int) string { return s.names[i] }

// Sequence returns a read-only view of sequence i's bytes.
func (s *Store) Sequence(i int) []byte { return s.seqs[i] }

// Initial returns the all-zeros lattice coordinate, the search's origin.
func (s *Store) Initial() coord.Coord {
	return coord.New(s.N())
}

// Final returns the all-lengths lattice coordinate, the search's goal.
func (s *Store) Final() coord.Coord {
	vals := make([]uint16, s.N())
	for i := range s.seqs {
		vals[i] = uint16(len(s.seqs[i]))
	}
	return coord.FromSlice(vals)
}
