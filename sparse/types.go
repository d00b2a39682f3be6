// SPDX-License-Identifier: MIT

package sparse

// cell addresses one stored entry by (row, col).
type cell struct {
	row, col int
}

// Matrix is a rows×cols integer matrix stored as a dictionary of keys:
// only non-zero values occupy memory and every absent coordinate reads
// as 0.
//
// The no-stored-zero invariant is maintained by Set, which removes an
// entry instead of storing 0. Coordinates are never bounds-checked: the
// declared shape is informational, reads outside it return 0 and writes
// outside it are stored like any other entry.
//
// The zero value is an empty 0×0 matrix ready for use; Set allocates
// storage on the first non-zero write.
//
// Matrix is not safe for concurrent use; callers sharing an instance
// across goroutines must synchronize externally.
type Matrix struct {
	rows, cols int            // declared shape, not enforced
	cells      map[cell]int64 // non-zero entries only
}

// New returns an empty rows×cols matrix; every element reads as 0.
// A 0×0 shape is legal (the "rows=0/cols=0" encoding decodes to it).
// Complexity: O(1).
func New(rows, cols int) *Matrix {
	return &Matrix{
		rows:  rows,
		cols:  cols,
		cells: make(map[cell]int64),
	}
}

// Rows returns the declared row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the declared column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows and Cols into a single call. Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored (non-zero) entries. Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.cells) }
