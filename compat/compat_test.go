package compat_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gramo/compat"
)

func matrices(rows, cols int) map[string]compat.Matrix {
	return map[string]compat.Matrix{
		"dense":  compat.NewDense(rows, cols),
		"log":    compat.NewLog(rows, cols),
		"packed": compat.NewPacked(rows, cols),
	}
}

func TestAdvanceRevertIsIdentity(t *testing.T) {
	for name, m := range matrices(4, 5) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 4; i++ {
				for j := 0; j < 5; j++ {
					if (i+j)%2 == 0 {
						m.Set(i, j)
					}
				}
			}
			before := snapshot(m)

			m.Advance()
			m.Unset(0, 0)
			m.Unset(1, 2)
			m.Unset(3, 4)
			m.Revert()

			require.Equal(t, before, snapshot(m))
		})
	}
}

func TestNestedAdvanceRevert(t *testing.T) {
	for name, m := range matrices(3, 3) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					m.Set(i, j)
				}
			}
			outer := snapshot(m)

			m.Advance()
			m.Unset(0, 0)
			inner := snapshot(m)

			m.Advance()
			m.Unset(1, 1)
			m.Revert()
			require.Equal(t, inner, snapshot(m))

			m.Revert()
			require.Equal(t, outer, snapshot(m))
		})
	}
}

func TestNumCandidatesMatchesRowCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for name, m := range matrices(6, 7) {
		t.Run(name, func(t *testing.T) {
			for step := 0; step < 50; step++ {
				i, j := rng.Intn(6), rng.Intn(7)
				if rng.Intn(2) == 0 {
					m.Set(i, j)
				} else {
					m.Unset(i, j)
				}
			}
			for i := 0; i < 6; i++ {
				require.Equal(t, m.NumCandidates(i), len(m.Row(i)))
				require.Equal(t, m.NumCandidates(i) > 0, m.Possible(i))
			}
		})
	}
}

func TestUnbalancedRevertPanics(t *testing.T) {
	for name, m := range matrices(1, 1) {
		t.Run(name, func(t *testing.T) {
			require.Panics(t, func() { m.Revert() })
		})
	}
}

func snapshot(m compat.Matrix) [][]bool {
	out := make([][]bool, m.Rows())
	for i := range out {
		out[i] = make([]bool, m.Cols())
		for j := 0; j < m.Cols(); j++ {
			out[i][j] = m.Get(i, j)
		}
	}

	return out
}
