// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Equality and arithmetic over Vector values.
//   - Every operation returns a fresh vector; operands are never mutated.
//   - Validation runs before allocation so a failed call leaves nothing half-built.
//
// Determinism:
//   - Fixed 0..n-1 loop order.

package vector

import (
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b have the same size and elementwise equal values.
// Start indices are ignored. Two nil vectors are equal; nil and non-nil are not.
// Complexity: O(n).
func Equal[T Number](a, b *Vector[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}

	return a.size == b.size && slices.Equal(a.data, b.data)
}

// NotEqual is the negation of Equal.
func NotEqual[T Number](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// mapScalar returns out[i] = f(v[i], k) with v's size and start index.
func mapScalar[T Number](op string, v *Vector[T], k T, f func(x, k T) T) (*Vector[T], error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf(op, err)
	}

	out := &Vector[T]{size: v.size, startIndex: v.startIndex, data: make([]T, v.size)}
	for i, x := range v.data {
		out.data[i] = f(x, k)
	}

	return out, nil
}

// AddScalar returns a new vector with out[i] = v[i] + k.
func AddScalar[T Number](v *Vector[T], k T) (*Vector[T], error) {
	return mapScalar(opAddScalar, v, k, func(x, k T) T { return x + k })
}

// SubScalar returns a new vector with out[i] = v[i] - k.
func SubScalar[T Number](v *Vector[T], k T) (*Vector[T], error) {
	return mapScalar(opSubScalar, v, k, func(x, k T) T { return x - k })
}

// MulScalar returns a new vector with out[i] = v[i] * k.
// No overflow checking beyond what T provides natively.
func MulScalar[T Number](v *Vector[T], k T) (*Vector[T], error) {
	return mapScalar(opMulScalar, v, k, func(x, k T) T { return x * k })
}

// zipWith computes out[i] = f(a[i], b[i]) for same-size operands.
// The result carries a's start index.
func zipWith[T Number](op string, a, b *Vector[T], f func(x, y T) T) (*Vector[T], error) {
	if err := validateSameSize(a, b); err != nil {
		return nil, vectorErrorf(op, err)
	}

	out := &Vector[T]{size: a.size, startIndex: a.startIndex, data: make([]T, a.size)}
	for i := 0; i < a.size; i++ {
		out.data[i] = f(a.data[i], b.data[i])
	}

	return out, nil
}

// Add computes the elementwise sum a + b.
// Errors:
//   - ErrNilVector, ErrSizeMismatch (wrapped with "Vector.Add").
//
// Complexity: O(n) time, O(n) space for the result.
func Add[T Number](a, b *Vector[T]) (*Vector[T], error) {
	return zipWith(opAdd, a, b, func(x, y T) T { return x + y })
}

// Sub computes the elementwise difference, out[i] = a[i] - b[i].
// Errors:
//   - ErrNilVector, ErrSizeMismatch (wrapped with "Vector.Sub").
func Sub[T Number](a, b *Vector[T]) (*Vector[T], error) {
	return zipWith(opSub, a, b, func(x, y T) T { return x - y })
}

// Dot returns the sum over i of a[i]*b[i], accumulated in T.
// Errors:
//   - ErrNilVector, ErrSizeMismatch (wrapped with "Vector.Dot").
//
// Complexity: O(n) time, O(1) space.
func Dot[T Number](a, b *Vector[T]) (T, error) {
	var sum T
	if err := validateSameSize(a, b); err != nil {
		return sum, vectorErrorf(opDot, err)
	}
	for i := 0; i < a.size; i++ {
		sum += a.data[i] * b.data[i]
	}

	return sum, nil
}
