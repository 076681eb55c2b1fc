// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Single source of truth for shape/nil/range checks.
//   - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// All checks are pure, allocate nothing and run in O(1).

package vector

// validateShape checks size and start index in priority order (size first).
func validateShape(size, startIndex int) error {
	if size <= 0 || size > MaxVectorSize {
		return ErrInvalidSize
	}
	if startIndex < 0 {
		return ErrInvalidStartIndex
	}

	return nil
}

// validateNotNil rejects nil operands.
func validateNotNil[T Number](vs ...*Vector[T]) error {
	for _, v := range vs {
		if v == nil {
			return ErrNilVector
		}
	}

	return nil
}

// validateSameSize checks a and b are non-nil and of equal size.
func validateSameSize[T Number](a, b *Vector[T]) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if a.size != b.size {
		return ErrSizeMismatch
	}

	return nil
}
