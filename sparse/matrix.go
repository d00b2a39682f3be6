// SPDX-License-Identifier: MIT

// Element access, copying and traversal for the dictionary-of-keys Matrix.
// At and Set are total: no coordinate is rejected, absent entries read as 0
// and zero writes delete. Every other operation builds on these two.

package sparse

import "sort"

// At returns the value at (row, col), or 0 when nothing is stored there.
// Out-of-shape coordinates are not an error; they simply read as 0.
// Complexity: O(1).
func (m *Matrix) At(row, col int) int64 {
	return m.cells[cell{row, col}]
}

// Set stores v at (row, col). Writing 0 removes the entry, preserving the
// no-stored-zero invariant; writing over an entry replaces its value.
// Set works on a zero-value Matrix: storage is allocated on the first
// non-zero write. Complexity: O(1).
func (m *Matrix) Set(row, col int, v int64) {
	k := cell{row, col}
	if v == 0 {
		delete(m.cells, k)
		return
	}
	if m.cells == nil {
		m.cells = make(map[cell]int64)
	}
	m.cells[k] = v
}

// Clone returns a deep copy sharing no state with the receiver.
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	cp := New(m.rows, m.cols)
	for k, v := range m.cells {
		cp.cells[k] = v
	}
	return cp
}

// Equal reports whether m and other have identical shapes and agree on
// every element. Matrices with the same entries but different declared
// shapes are not equal; a nil other is never equal.
// Complexity: O(nnz).
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil {
		return false
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	if len(m.cells) != len(other.cells) {
		return false
	}
	for k, v := range m.cells {
		if other.cells[k] != v {
			return false
		}
	}
	return true
}

// Do visits every stored entry in ascending row-major order, calling f for
// each; traversal stops early when f returns false.
// Complexity: O(nnz·log nnz) for the ordering pass.
func (m *Matrix) Do(f func(row, col int, v int64) bool) {
	for _, k := range m.sortedCells() {
		if !f(k.row, k.col, m.cells[k]) {
			return
		}
	}
}

// sortedCells returns the stored keys in ascending (row, col) order.
// Shared by Do and MarshalText so every traversal is deterministic.
func (m *Matrix) sortedCells() []cell {
	keys := make([]cell, 0, len(m.cells))
	for k := range m.cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].row != keys[j].row {
			return keys[i].row < keys[j].row
		}
		return keys[i].col < keys[j].col
	})
	return keys
}
