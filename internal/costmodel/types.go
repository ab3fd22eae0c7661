// Package costmodel defines the pluggable sum-of-pairs scoring scheme:
// a 256x256 substitution matrix plus gap penalties, immutable after
// construction, over integer edit costs and byte alphabets.
package costmodel

// Model is an immutable substitution matrix plus gap penalties. Values are
// costs (lower is better), not similarity scores: identical residues cost
// 0 in the nucleotide preset, but PAM250 is a distance-form table where
// even a self-match has a positive cost (except tryptophan).
type Model struct {
	matrix [256][256]int32
	gap    int32
	gapGap int32
	preset string
}

// Cost returns the substitution cost of aligning residue a against residue b.
func (m *Model) Cost(a, b byte) int32 { return m.matrix[a][b] }

// GapCost returns the cost of aligning a residue against a gap.
func (m *Model) GapCost() int32 { return m.gap }

// GapGap returns the cost charged to a sequence pair when a move advances
// neither sequence of the pair. With two sequences every move advances at
// least one of them, so the cost only arises for three or more sequences.
func (m *Model) GapGap() int32 { return m.gapGap }

// Preset names the configuration this Model was built from ("nucleotide"
// or "pam250"), used only for logging.
func (m *Model) Preset() string { return m.preset }
