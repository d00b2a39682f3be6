// SPDX-License-Identifier: MIT

// Package sparse: algebra kernels over the dictionary-of-keys storage.
// Binary operations validate fail-fast, never mutate their operands and
// return freshly allocated results. All result writes go through Set, so
// entries that cancel to zero are pruned without a separate pass.

package sparse

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// sparseErrorf wraps a non-nil err with its operation tag, preserving the
// underlying sentinel for errors.Is.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes m + sign·other for sign in {+1, -1}: one shape check,
// one allocation, shared by Add and Sub.
// Complexity: O(nnz(m) + nnz(other)).
func (m *Matrix) addSub(other *Matrix, sign int64, opTag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return nil, sparseErrorf(opTag, err)
	}

	res := New(m.rows, m.cols)
	for k, v := range m.cells {
		res.cells[k] = v // direct copy, v is non-zero by invariant
	}
	for k, v := range other.cells {
		res.Set(k.row, k.col, res.At(k.row, k.col)+sign*v)
	}

	return res, nil
}

// Add returns the elementwise sum m + other as a fresh matrix.
//
// Contract: other non-nil and of identical shape, else ErrNilMatrix or
// ErrDimensionMismatch wrapped with the Add tag.
// Complexity: O(nnz(m) + nnz(other)).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) { return m.addSub(other, +1, opAdd) }

// Sub returns the elementwise difference m - other as a fresh matrix.
// Entries that cancel exactly are pruned from the result.
//
// Contract: other non-nil and of identical shape, else ErrNilMatrix or
// ErrDimensionMismatch wrapped with the Sub tag.
// Complexity: O(nnz(m) + nnz(other)).
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) { return m.addSub(other, -1, opSub) }

// Mul returns the matrix product m × other as a fresh
// m.Rows()×other.Cols() matrix.
//
// The kernel walks the stored entries of m and, for each, scans every
// column of other: zero rows of m cost nothing, and only successful map
// lookups contribute to the accumulation.
//
// Contract: other non-nil with other.Rows() == m.Cols(), else ErrNilMatrix
// or ErrDimensionMismatch wrapped with the Mul tag.
// Complexity: O(nnz(m) · other.Cols()).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	res := New(m.rows, other.cols)
	for k, v := range m.cells { // every stored m[i][n]
		for j := 0; j < other.cols; j++ {
			if w, ok := other.cells[cell{k.col, j}]; ok {
				res.Set(k.row, j, res.At(k.row, j)+v*w)
			}
		}
	}

	return res, nil
}

// Scale returns a fresh matrix with every entry multiplied by alpha.
// A factor of 0 yields an empty matrix of the same shape. Never fails and
// never mutates the receiver.
// Complexity: O(nnz).
func (m *Matrix) Scale(alpha int64) *Matrix {
	res := New(m.rows, m.cols)
	for k, v := range m.cells {
		res.Set(k.row, k.col, v*alpha)
	}
	return res
}
