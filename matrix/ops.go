// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Value-returning arithmetic: the result is a fresh *Dense owned by the
//     caller, so there is no separate release step to forget.

package matrix

import "gonum.org/v1/gonum/floats"

// Add returns a new matrix holding a[i,j] + b[i,j].
// MAIN DESCRIPTION:
//   - Element-wise sum into newly allocated storage; operands are untouched.
//
// Implementation:
//   - Stage 1: validate non-nil operands and equal shapes.
//   - Stage 2: allocate the result and sum the flat buffers in one pass.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Add", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Add", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Add", err)
	}

	out, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf("Add", err)
	}
	floats.AddTo(out.data, a.data, b.data)

	return out, nil
}
