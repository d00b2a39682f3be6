// SPDX-License-Identifier: MIT

// Package sparse: sentinel error set.
// Every failure path returns one of these sentinels, wrapped with call-site
// context via %w, so callers and tests match them with errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested matrix file does not exist.
	ErrNotFound = errors.New("sparse: matrix file not found")

	// ErrBadFormat indicates text that does not follow the matrix encoding.
	// The specific parse failures below wrap it, so errors.Is(err, ErrBadFormat)
	// matches every malformed input.
	ErrBadFormat = errors.New("sparse: invalid matrix format")

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// Add/Sub on different dimensions, or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates a nil *Matrix operand or receiver.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// Specializations of ErrBadFormat. Each carries its own message and still
// satisfies errors.Is(err, ErrBadFormat).
var (
	// ErrEmptyInput indicates input with no content to parse.
	ErrEmptyInput = fmt.Errorf("%w: input is empty", ErrBadFormat)

	// ErrNonIntegerCell indicates a cell line whose triple is not three
	// integers, floating-point values included.
	ErrNonIntegerCell = fmt.Errorf("%w: matrix contains floating-point values or invalid cell format", ErrBadFormat)
)
