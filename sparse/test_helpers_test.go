// SPDX-License-Identifier: MIT

// Package sparse_test contains shared fixtures for the sparse matrix tests.
// All builders route writes through Set so every fixture upholds the
// no-stored-zero invariant the package guarantees.

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/sparse"
)

// entry is a (row, col, value) triple used by fixture builders and by
// traversal assertions.
type entry struct {
	row, col int
	v        int64
}

// matrixOf builds a rows×cols matrix holding the given entries.
func matrixOf(rows, cols int, entries ...entry) *sparse.Matrix {
	m := sparse.New(rows, cols)
	for _, e := range entries {
		m.Set(e.row, e.col, e.v)
	}
	return m
}

// mustParse decodes text into a matrix or fails the test.
func mustParse(t *testing.T, text string) *sparse.Matrix {
	t.Helper()
	m, err := sparse.Parse([]byte(text))
	require.NoError(t, err, "Parse(%q)", text)
	return m
}

// collect returns every stored entry of m in Do visit order.
func collect(m *sparse.Matrix) []entry {
	var out []entry
	m.Do(func(row, col int, v int64) bool {
		out = append(out, entry{row, col, v})
		return true
	})
	return out
}

// assertNoStoredZeros walks m and fails if any stored value is zero.
// Absence is the only representation of zero the package allows.
func assertNoStoredZeros(t *testing.T, m *sparse.Matrix) {
	t.Helper()
	m.Do(func(row, col int, v int64) bool {
		require.NotZero(t, v, "cell (%d, %d) stores a zero", row, col)
		return true
	})
}
