package pairalign

import "github.com/msapastar/pastar/internal/costmodel"

// Table is the backward-filled suffix-alignment cost table for one
// sequence pair: M[i][j] is the optimal cost of aligning s1[i:] against
// s2[j:] to completion, under the same cost model the search itself uses.
type Table struct {
	Pair [2]int
	M    [][]int32
}

// Build fills the suffix-alignment table for the pair (i, j) of sequences
// s1 and s2, back to front: border rows/columns grow by the gap cost,
// interior cells take the cheapest of gap-down, gap-right, or diagonal
// substitution.
func Build(i, j int, s1, s2 []byte, cm *costmodel.Model) *Table {
	rows, cols := len(s1)+1, len(s2)+1
	m := make([][]int32, rows)
	for r := range m {
		m[r] = make([]int32, cols)
	}

	m[rows-1][cols-1] = 0
	for c := cols - 2; c >= 0; c-- {
		m[rows-1][c] = m[rows-1][c+1] + cm.GapCost()
	}
	for r := rows - 2; r >= 0; r-- {
		m[r][cols-1] = m[r+1][cols-1] + cm.GapCost()
	}

	for r := rows - 2; r >= 0; r-- {
		for c := cols - 2; c >= 0; c-- {
			down := m[r+1][c] + cm.GapCost()
			right := m[r][c+1] + cm.GapCost()
			diag := m[r+1][c+1] + cm.Cost(s1[r], s2[c])
			m[r][c] = min3(down, right, diag)
		}
	}

	return &Table{Pair: [2]int{i, j}, M: m}
}

// GetScore returns the cost of optimally aligning s1[posI:] against
// s2[posJ:] to completion.
func (t *Table) GetScore(posI, posJ int) int32 { return t.M[posI][posJ] }

// FinalScore returns the cost of aligning the two full sequences, the
// value at the table's origin.
func (t *Table) FinalScore() int32 { return t.M[0][0] }

func min3(a, b, c int32) int32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
