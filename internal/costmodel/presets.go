// Package costmodel — preset constructors.
//
// pam250Pairs lists the distance-form PAM250 substitution table as
// unordered amino-acid pairs (roughly 190 off-diagonal entries plus 20
// diagonal self-costs), symmetrized by PAM250. Everything outside the
// 20-letter amino-acid alphabet (and the gap character) remains cost 0
// in the zero-initialized 256x256 matrix.
package costmodel

// pam250Pair is one unordered (residue, residue, cost) entry.
type pam250Pair struct {
	a, b byte
	cost int32
}

var pam250Pairs = []pam250Pair{
	{'A', 'A', 15},
	{'A', 'C', 19},
	{'A', 'D', 17},
	{'A', 'E', 17},
	{'A', 'F', 21},
	{'A', 'G', 16},
	{'A', 'H', 18},
	{'A', 'I', 18},
	{'A', 'K', 18},
	{'A', 'L', 19},
	{'A', 'M', 18},
	{'A', 'N', 17},
	{'A', 'P', 16},
	{'A', 'Q', 17},
	{'A', 'R', 19},
	{'A', 'S', 16},
	{'A', 'T', 16},
	{'A', 'V', 17},
	{'A', 'W', 23},
	{'A', 'Y', 20},
	{'C', 'C', 5},
	{'C', 'D', 22},
	{'C', 'E', 22},
	{'C', 'F', 21},
	{'C', 'G', 20},
	{'C', 'H', 20},
	{'C', 'I', 19},
	{'C', 'K', 22},
	{'C', 'L', 23},
	{'C', 'M', 22},
	{'C', 'N', 21},
	{'C', 'P', 20},
	{'C', 'Q', 22},
	{'C', 'R', 21},
	{'C', 'S', 17},
	{'C', 'T', 19},
	{'C', 'V', 19},
	{'C', 'W', 25},
	{'C', 'Y', 17},
	{'D', 'D', 13},
	{'D', 'E', 14},
	{'D', 'F', 23},
	{'D', 'G', 16},
	{'D', 'H', 16},
	{'D', 'I', 19},
	{'D', 'K', 17},
	{'D', 'L', 21},
	{'D', 'M', 20},
	{'D', 'N', 15},
	{'D', 'P', 18},
	{'D', 'Q', 15},
	{'D', 'R', 18},
	{'D', 'S', 17},
	{'D', 'T', 17},
	{'D', 'V', 19},
	{'D', 'W', 24},
	{'D', 'Y', 21},
	{'E', 'E', 13},
	{'E', 'F', 22},
	{'E', 'G', 17},
	{'E', 'H', 16},
	{'E', 'I', 19},
	{'E', 'K', 17},
	{'E', 'L', 20},
	{'E', 'M', 19},
	{'E', 'N', 16},
	{'E', 'P', 18},
	{'E', 'Q', 15},
	{'E', 'R', 18},
	{'E', 'S', 17},
	{'E', 'T', 17},
	{'E', 'V', 19},
	{'E', 'W', 24},
	{'E', 'Y', 21},
	{'F', 'F', 8},
	{'F', 'G', 22},
	{'F', 'H', 19},
	{'F', 'I', 16},
	{'F', 'K', 22},
	{'F', 'L', 15},
	{'F', 'M', 17},
	{'F', 'N', 21},
	{'F', 'P', 22},
	{'F', 'Q', 22},
	{'F', 'R', 21},
	{'F', 'S', 20},
	{'F', 'T', 20},
	{'F', 'V', 18},
	{'F', 'W', 17},
	{'F', 'Y', 10},
	{'G', 'G', 12},
	{'G', 'H', 19},
	{'G', 'I', 20},
	{'G', 'K', 19},
	{'G', 'L', 21},
	{'G', 'M', 20},
	{'G', 'N', 17},
	{'G', 'P', 18},
	{'G', 'Q', 18},
	{'G', 'R', 20},
	{'G', 'S', 16},
	{'G', 'T', 17},
	{'G', 'V', 18},
	{'G', 'W', 24},
	{'G', 'Y', 22},
	{'H', 'H', 11},
	{'H', 'I', 19},
	{'H', 'K', 17},
	{'H', 'L', 19},
	{'H', 'M', 19},
	{'H', 'N', 15},
	{'H', 'P', 17},
	{'H', 'Q', 14},
	{'H', 'R', 15},
	{'H', 'S', 18},
	{'H', 'T', 18},
	{'H', 'V', 19},
	{'H', 'W', 20},
	{'H', 'Y', 17},
	{'I', 'I', 12},
	{'I', 'K', 19},
	{'I', 'L', 15},
	{'I', 'M', 15},
	{'I', 'N', 19},
	{'I', 'P', 19},
	{'I', 'Q', 19},
	{'I', 'R', 19},
	{'I', 'S', 18},
	{'I', 'T', 17},
	{'I', 'V', 13},
	{'I', 'W', 22},
	{'I', 'Y', 18},
	{'K', 'K', 12},
	{'K', 'L', 20},
	{'K', 'M', 17},
	{'K', 'N', 16},
	{'K', 'P', 18},
	{'K', 'Q', 16},
	{'K', 'R', 14},
	{'K', 'S', 17},
	{'K', 'T', 17},
	{'K', 'V', 19},
	{'K', 'W', 20},
	{'K', 'Y', 21},
	{'L', 'L', 11},
	{'L', 'M', 13},
	{'L', 'N', 20},
	{'L', 'P', 20},
	{'L', 'Q', 19},
	{'L', 'R', 20},
	{'L', 'S', 20},
	{'L', 'T', 19},
	{'L', 'V', 15},
	{'L', 'W', 19},
	{'L', 'Y', 18},
	{'M', 'M', 11},
	{'M', 'N', 19},
	{'M', 'P', 19},
	{'M', 'Q', 18},
	{'M', 'R', 17},
	{'M', 'S', 19},
	{'M', 'T', 18},
	{'M', 'V', 15},
	{'M', 'W', 21},
	{'M', 'Y', 19},
	{'N', 'N', 15},
	{'N', 'P', 18},
	{'N', 'Q', 16},
	{'N', 'R', 17},
	{'N', 'S', 16},
	{'N', 'T', 17},
	{'N', 'V', 19},
	{'N', 'W', 21},
	{'N', 'Y', 19},
	{'P', 'P', 11},
	{'P', 'Q', 17},
	{'P', 'R', 17},
	{'P', 'S', 16},
	{'P', 'T', 17},
	{'P', 'V', 18},
	{'P', 'W', 23},
	{'P', 'Y', 22},
	{'Q', 'Q', 13},
	{'Q', 'R', 16},
	{'Q', 'S', 18},
	{'Q', 'T', 18},
	{'Q', 'V', 19},
	{'Q', 'W', 22},
	{'Q', 'Y', 21},
	{'R', 'R', 11},
	{'R', 'S', 17},
	{'R', 'T', 18},
	{'R', 'V', 19},
	{'R', 'W', 15},
	{'R', 'Y', 21},
	{'S', 'S', 15},
	{'S', 'T', 16},
	{'S', 'V', 18},
	{'S', 'W', 19},
	{'S', 'Y', 20},
	{'T', 'T', 14},
	{'T', 'V', 17},
	{'T', 'W', 22},
	{'T', 'Y', 20},
	{'V', 'V', 13},
	{'V', 'W', 23},
	{'V', 'Y', 19},
	{'W', 'W', 0},
	{'W', 'Y', 17},
	{'Y', 'Y', 7},
}

// Nucleotide returns the identity-scoring DNA/RNA cost model: 0 for a
// self-match, 1 for any mismatch among {A,C,G,T,U}, gap cost 2. T and U
// count as the same base (cost 0).
func Nucleotide() *Model {
	m := &Model{gap: 2, gapGap: 2, preset: "nucleotide"}
	bases := []byte{'A', 'C', 'G', 'T', 'U'}
	for _, x := range bases {
		for _, y := range bases {
			if x == y || (x == 'T' && y == 'U') || (x == 'U' && y == 'T') {
				continue // cost 0, matrix is zero-initialized
			}
			m.matrix[x][y] = 1
		}
	}
	return m
}

// PAM250 returns the point-accepted-mutation-250 cost model in distance
// form (lower is more conserved), gap cost 30.
func PAM250() *Model {
	m := &Model{gap: 30, gapGap: 30, preset: "pam250"}
	for _, p := range pam250Pairs {
		m.matrix[p.a][p.b] = p.cost
		m.matrix[p.b][p.a] = p.cost
	}
	return m
}
