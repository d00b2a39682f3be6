// SPDX-License-Identifier: MIT

// Package sparse implements integer matrices in dictionary-of-keys form:
// only non-zero values are stored, so memory tracks the number of entries
// rather than rows*cols.
//
// 🚀 What you get
//
//	• Matrix:      rows×cols int64 matrix backed by a map of (row, col) keys
//	• At / Set:    total element access; absent reads are 0, zero writes delete
//	• Add/Sub/Mul: validated algebra returning fresh matrices
//	• Scale:       scalar multiplication (a factor of 0 empties the matrix)
//	• Parse/Load:  line-oriented text codec with sentinel error reporting
//	• MarshalText: deterministic row-major serialization, round-trip safe
//
// ✨ Guarantees
//
//   - No stored zeros, ever: every mutation funnels through Set.
//   - Deterministic encoding: equal matrices serialize to identical bytes.
//   - Fail-fast sentinel errors (ErrBadFormat, ErrDimensionMismatch, ...)
//     matched with errors.Is; call sites add operation context via %w.
//   - No bounds enforcement: out-of-shape reads are 0, writes are kept.
//
// ⚙️ Usage:
//
//	a, err := sparse.Load("a.txt")
//	if err != nil { ... }
//	b, err := sparse.Load("b.txt")
//	if err != nil { ... }
//	res, err := a.Mul(b)
//	if err != nil { ... }
//	fmt.Print(res) // canonical text encoding
//
// Performance:
//
//   - At/Set: O(1)
//   - Add/Sub: O(nnz(a) + nnz(b))
//   - Mul: O(nnz(a) · b.Cols())
//   - MarshalText: O(nnz · log nnz) for the ordering pass
//
// Matrix performs no internal locking; see the type documentation for the
// concurrency contract.
package sparse
