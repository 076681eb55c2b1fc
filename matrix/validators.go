// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for order/nil/index checks.
//   - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil -> Order).

package matrix

import "github.com/katalvlaran/utmatrix/vector"

// validateOrder checks 0 < n <= MaxMatrixSize.
func validateOrder(n int) error {
	if n <= 0 || n > MaxMatrixSize {
		return ErrInvalidSize
	}

	return nil
}

// validateNotNil rejects nil operands.
func validateNotNil[T vector.Number](ms ...*UpperTriangular[T]) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// validateSameOrder checks a and b are non-nil and of equal order.
func validateSameOrder[T vector.Number](a, b *UpperTriangular[T]) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if a.n != b.n {
		return ErrSizeMismatch
	}

	return nil
}

// validateCell checks 0 <= i, j < n. It does not look at the triangle.
func validateCell(n, i, j int) error {
	if i < 0 || i >= n || j < 0 || j >= n {
		return ErrIndexOutOfRange
	}

	return nil
}
