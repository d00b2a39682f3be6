// SPDX-License-Identifier: MIT

// Package sparse: canonical operand checks shared by the algebra kernels.
// Validators return sentinels wrapped with the validator name; operation
// facades wrap the result once more with the operation tag.

package sparse

import "fmt"

// validatorErrorf tags a sentinel violation with the validator that found it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the operand is non-nil.
// Returns wrapped ErrNilMatrix otherwise. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSameShape ensures a and b have identical dimensions. Both operands
// must be non-nil (compose with ValidateNotNil otherwise).
// Returns wrapped ErrDimensionMismatch naming both shapes. Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch))
	}
	return nil
}

// ValidateBinarySameShape composes ValidateNotNil on both operands with
// ValidateSameShape, the full precondition of Add and Sub. Complexity: O(1).
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and chain for matrix
// multiplication, a.Cols() == b.Rows().
// Returns wrapped ErrDimensionMismatch naming both shapes. Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("inner dimensions must agree: a is %dx%d, b is %dx%d: %w",
				a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch))
	}
	return nil
}
