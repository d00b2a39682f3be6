// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sparsemat/sparse"
)

// TestValidateNotNil checks the nil and non-nil branches.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, sparse.ValidateNotNil(nil), sparse.ErrNilMatrix)
	assert.NoError(t, sparse.ValidateNotNil(sparse.New(1, 1)))
}

// TestValidateSameShape verifies shape agreement and that mismatches name
// both shapes in the error text.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	assert.NoError(t, sparse.ValidateSameShape(sparse.New(2, 3), sparse.New(2, 3)))

	err := sparse.ValidateSameShape(sparse.New(2, 3), sparse.New(3, 2))
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	assert.ErrorContains(t, err, "2x3")
	assert.ErrorContains(t, err, "3x2")
}

// TestValidateBinarySameShape covers the composite: nil operands first,
// then shape agreement.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	ok := sparse.New(2, 2)

	assert.ErrorIs(t, sparse.ValidateBinarySameShape(nil, ok), sparse.ErrNilMatrix)
	assert.ErrorIs(t, sparse.ValidateBinarySameShape(ok, nil), sparse.ErrNilMatrix)
	assert.ErrorIs(t, sparse.ValidateBinarySameShape(ok, sparse.New(2, 1)), sparse.ErrDimensionMismatch)
	assert.NoError(t, sparse.ValidateBinarySameShape(ok, sparse.New(2, 2)))
}

// TestValidateMulCompatible verifies the inner-dimension rule a.Cols == b.Rows.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	assert.NoError(t, sparse.ValidateMulCompatible(sparse.New(2, 3), sparse.New(3, 5)))

	assert.ErrorIs(t, sparse.ValidateMulCompatible(nil, sparse.New(3, 5)), sparse.ErrNilMatrix)
	assert.ErrorIs(t, sparse.ValidateMulCompatible(sparse.New(2, 3), nil), sparse.ErrNilMatrix)

	err := sparse.ValidateMulCompatible(sparse.New(2, 3), sparse.New(2, 5))
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	assert.ErrorContains(t, err, "inner dimensions must agree")
}
