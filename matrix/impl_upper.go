// SPDX-License-Identifier: MIT

// Package matrix - UpperTriangular storage & safe accessors.
//
// Purpose:
//   - Store only the upper triangle: row i is a vector.Vector of size n-i, start index i.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep value semantics: Clone/Assign/Row copy, never alias rows.
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; At/Set: O(1); Row: O(n); Clone/Assign: O(n²).

package matrix

import (
	"github.com/katalvlaran/utmatrix/vector"
)

// UpperTriangular is a square matrix of order n with zeros below the diagonal.
//   - n is the order (rows == cols == n).
//   - rows[i] has Size() == n-i and StartIndex() == i.
type UpperTriangular[T vector.Number] struct {
	n    int                 // order, 0 < n <= MaxMatrixSize
	rows []*vector.Vector[T] // len == n, exclusively owned
}

// New creates a zero upper-triangular matrix of order n.
// Implementation:
//   - Stage 1: validate 0 < n <= MaxMatrixSize.
//   - Stage 2: allocate row i with size n-i and start index i.
//
// Errors:
//   - ErrInvalidSize (wrapped with "UpperTriangular.New").
//
// Complexity:
//   - Time O(n²), Space O(n²/2).
func New[T vector.Number](n int) (*UpperTriangular[T], error) {
	if err := validateOrder(n); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	rows := make([]*vector.Vector[T], n)
	for i := 0; i < n; i++ {
		row, err := vector.New[T](n-i, vector.WithStartIndex(i))
		if err != nil {
			return nil, matrixErrorf(opNew, err)
		}
		rows[i] = row
	}

	return &UpperTriangular[T]{n: n, rows: rows}, nil
}

// FromRows builds a matrix from the stored part of each row: rows[i] must hold
// the n-i values for columns i..n-1.
// Errors:
//   - ErrInvalidSize when len(rows) is out of range.
//   - ErrSizeMismatch when a row has the wrong length.
//
// Complexity: O(n²).
func FromRows[T vector.Number](rows [][]T) (*UpperTriangular[T], error) {
	n := len(rows)
	if err := validateOrder(n); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	out := make([]*vector.Vector[T], n)
	for i, values := range rows {
		if len(values) != n-i {
			return nil, cellErrorf(opFromRows, i, i, ErrSizeMismatch)
		}
		row, err := vector.FromSlice(values, vector.WithStartIndex(i))
		if err != nil {
			return nil, matrixErrorf(opFromRows, err)
		}
		out[i] = row
	}

	return &UpperTriangular[T]{n: n, rows: out}, nil
}

// Size returns the order n.
func (m *UpperTriangular[T]) Size() int { return m.n }

// At returns the value at (i, j).
// Cells with j < i read as zero. Indices outside [0, n) give ErrIndexOutOfRange.
// Complexity: O(1).
func (m *UpperTriangular[T]) At(i, j int) (T, error) {
	var zero T
	if err := validateCell(m.n, i, j); err != nil {
		return zero, cellErrorf(opAt, i, j, err)
	}
	if j < i {
		return zero, nil
	}

	row := m.rows[i]
	x, err := row.At(j - row.StartIndex())
	if err != nil {
		return zero, cellErrorf(opAt, i, j, err)
	}

	return x, nil
}

// Set stores x at (i, j).
// Errors:
//   - ErrIndexOutOfRange for indices outside [0, n).
//   - ErrBelowDiagonal for j < i.
//
// Complexity: O(1).
func (m *UpperTriangular[T]) Set(i, j int, x T) error {
	if err := validateCell(m.n, i, j); err != nil {
		return cellErrorf(opSet, i, j, err)
	}
	if j < i {
		return cellErrorf(opSet, i, j, ErrBelowDiagonal)
	}

	row := m.rows[i]
	if err := row.Set(j-row.StartIndex(), x); err != nil {
		return cellErrorf(opSet, i, j, err)
	}

	return nil
}

// Row returns a copy of the stored part of row i (size n-i, start index i).
func (m *UpperTriangular[T]) Row(i int) (*vector.Vector[T], error) {
	if i < 0 || i >= m.n {
		return nil, cellErrorf(opRow, i, i, ErrIndexOutOfRange)
	}

	return m.rows[i].Clone(), nil
}

// Clone returns a deep copy with independent row storage.
// Complexity: O(n²).
func (m *UpperTriangular[T]) Clone() *UpperTriangular[T] {
	rows := make([]*vector.Vector[T], m.n)
	for i, row := range m.rows {
		rows[i] = row.Clone()
	}

	return &UpperTriangular[T]{n: m.n, rows: rows}
}

// Assign replaces m with a deep copy of src; m.Assign(m) is a no-op.
// The copy is fully built before m is touched, so m never ends up half-assigned.
// Errors:
//   - ErrNilMatrix if src is nil.
func (m *UpperTriangular[T]) Assign(src *UpperTriangular[T]) error {
	if err := validateNotNil(src); err != nil {
		return matrixErrorf(opAssign, err)
	}
	if m == src {
		return nil
	}

	cp := src.Clone()
	m.n, m.rows = cp.n, cp.rows

	return nil
}

// Dense expands the matrix into an n×n slice with explicit zeros below the diagonal.
func (m *UpperTriangular[T]) Dense() [][]T {
	out := make([][]T, m.n)
	for i, row := range m.rows {
		out[i] = make([]T, m.n)
		copy(out[i][i:], row.Values())
	}

	return out
}

// Equal reports whether m and o have the same order and equal cells.
func (m *UpperTriangular[T]) Equal(o *UpperTriangular[T]) bool {
	return Equal(m, o)
}
