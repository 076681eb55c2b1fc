// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Equality and arithmetic over UpperTriangular values, delegated row by row
//     to the vector package so bounds and size rules live in one place.
//   - Results are fresh matrices; operands are never mutated.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/utmatrix/vector"
)

// Equal reports whether a and b have the same order and equal rows.
// Two nil matrices are equal; nil and non-nil are not.
func Equal[T vector.Number](a, b *UpperTriangular[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.n != b.n {
		return false
	}
	for i := range a.rows {
		if !vector.Equal(a.rows[i], b.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func NotEqual[T vector.Number](a, b *UpperTriangular[T]) bool {
	return !Equal(a, b)
}

// rowwise applies f to each pair of rows and collects the results.
func rowwise[T vector.Number](
	op string,
	a, b *UpperTriangular[T],
	f func(x, y *vector.Vector[T]) (*vector.Vector[T], error),
) (*UpperTriangular[T], error) {
	if err := validateSameOrder(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}

	rows := make([]*vector.Vector[T], a.n)
	for i := 0; i < a.n; i++ {
		row, err := f(a.rows[i], b.rows[i])
		if err != nil {
			return nil, matrixErrorf(op, fmt.Errorf("row %d: %w", i, err))
		}
		rows[i] = row
	}

	return &UpperTriangular[T]{n: a.n, rows: rows}, nil
}

// Add computes the elementwise sum a + b.
// Errors:
//   - ErrNilMatrix, ErrSizeMismatch.
//
// Complexity: O(n²).
func Add[T vector.Number](a, b *UpperTriangular[T]) (*UpperTriangular[T], error) {
	return rowwise(opAdd, a, b, vector.Add[T])
}

// Sub computes the elementwise difference a - b.
// Errors:
//   - ErrNilMatrix, ErrSizeMismatch.
func Sub[T vector.Number](a, b *UpperTriangular[T]) (*UpperTriangular[T], error) {
	return rowwise(opSub, a, b, vector.Sub[T])
}

// MulVec computes y = m·x for x of size n.
// Implementation:
//   - Stage 1: validate operands, x.Size() == n.
//   - Stage 2: y[i] = Dot(row i, x[i:]), the row's start index selects the tail of x.
//
// Errors:
//   - ErrNilMatrix, vector.ErrNilVector, ErrSizeMismatch.
//
// Complexity:
//   - Time O(n²), Space O(n) per row tail.
func MulVec[T vector.Number](m *UpperTriangular[T], x *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if x == nil {
		return nil, matrixErrorf(opMulVec, vector.ErrNilVector)
	}
	if x.Size() != m.n {
		return nil, matrixErrorf(opMulVec, ErrSizeMismatch)
	}

	xs := x.Values()
	out := make([]T, m.n)
	for i, row := range m.rows {
		tail, err := vector.FromSlice(xs[row.StartIndex():])
		if err != nil {
			return nil, matrixErrorf(opMulVec, err)
		}
		if out[i], err = vector.Dot(row, tail); err != nil {
			return nil, matrixErrorf(opMulVec, fmt.Errorf("row %d: %w", i, err))
		}
	}

	return vector.FromSlice(out)
}
