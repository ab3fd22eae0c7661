package routing

import (
	"errors"
	"fmt"

	"github.com/msapastar/pastar/internal/coord"
)

// HashType selects which reduction of a coord.Coord feeds the worker
// routing function.
type HashType int

const (
	// FZorder interleaves every dimension's bits (Morton code).
	FZorder HashType = iota
	// PZorder interleaves every dimension's bits except dimension 0's.
	PZorder
	// FSum adds every dimension's coordinate.
	FSum
	// PSum adds every dimension's coordinate except dimension 0's.
	PSum
)

// ErrUnknownHashType is returned by ParseHashType for an unrecognized name.
var ErrUnknownHashType = errors.New("routing: unknown hash type")

// String renders the canonical name used on the CLI and in logs.
func (h HashType) String() string {
	switch h {
	case FZorder:
		return "fzorder"
	case PZorder:
		return "pzorder"
	case FSum:
		return "fsum"
	case PSum:
		return "psum"
	default:
		return fmt.Sprintf("HashType(%d)", int(h))
	}
}

// ParseHashType parses a hash scheme name, case-sensitively matching the
// canonical lowercase spellings.
func ParseHashType(s string) (HashType, error) {
	switch s {
	case "fzorder":
		return FZorder, nil
	case "pzorder":
		return PZorder, nil
	case "fsum":
		return FSum, nil
	case "psum":
		return PSum, nil
	default:
		return FZorder, fmt.Errorf("%w: %q", ErrUnknownHashType, s)
	}
}

// reduce applies h's reduction to c, yielding the raw (pre-shift) hash.
func (h HashType) reduce(c coord.Coord) uint64 {
	switch h {
	case FZorder:
		return c.ZOrder()
	case PZorder:
		return c.PartialZOrder()
	case FSum:
		return uint64(c.Sum())
	case PSum:
		return uint64(c.PartialSum())
	default:
		return uint64(c.Sum())
	}
}

// Owner resolves the worker index that owns position c: the chosen hash
// reduction, right-shifted by shift, folded into [0, size) by modulus, and
// then optionally permuted through threadMap (nil means no indirection).
// When threadMap is provided, the modulus is taken over its length instead
// of size, so the full routing space spreads across every entry before
// indirection.
func Owner(c coord.Coord, h HashType, size int, shift uint, threadMap []int) int {
	hash := h.reduce(c) >> shift
	if threadMap != nil {
		slot := int(hash % uint64(len(threadMap)))
		return threadMap[slot]
	}
	return int(hash % uint64(size))
}
