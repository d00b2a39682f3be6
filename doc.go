// Package sparsemat is a dictionary-of-keys sparse integer matrix library
// with a small command-line calculator on top.
//
// 🚀 What is sparsemat?
//
//	A compact library for matrices where almost everything is zero:
//		• Storage: map-of-keys cells, memory scales with non-zeros only
//		• Algebra: Add, Sub, Mul, Scale with fail-fast shape validation
//		• Codec: line-oriented "rows=/cols=/(r, c, v)" text encoding
//		• Round-trips: deterministic row-major serialization, byte-stable
//		• Shell: sparsemat add|sub|mul|scale over matrix files
//
// ✨ Why choose sparsemat?
//
//   - Small surface: a single Matrix type with intuitive naming
//   - Honest zeros: writing 0 deletes; no stored zero survives any operation
//   - Sentinel errors: errors.Is friendly (ErrBadFormat, ErrDimensionMismatch…)
//   - Scriptable: results on stdout, logs on stderr, exit codes for pipelines
//
// Everything is organized under two packages and a binary:
//
//	sparse/        — the Matrix type, algebra kernels, validators & text codec
//	internal/cli/  — cobra command tree, config, persistence of results
//	cmd/sparsemat/ — the binary entry point
//
// Quick example:
//
//	rows=2
//	cols=2
//	(0, 0, 1)
//	(1, 1, 2)
//
//	encodes the 2×2 matrix with 1 and 2 on the diagonal.
//
// Dive into the sparse package documentation for the full API, guarantees
// and complexity notes.
//
//	go get github.com/katalvlaran/sparsemat
package sparsemat
