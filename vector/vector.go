// SPDX-License-Identifier: MIT

// Package vector - bounded storage & safe accessors.
//
// Purpose:
//   - Own a contiguous buffer of exactly Size() elements; copies are always deep.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Carry a logical start index for row-oriented consumers (see package matrix).
//
// Complexity quicksheet:
//   - New/FromSlice/Clone: O(n); At/Set/Size/StartIndex: O(1); Assign: O(n).

package vector

import (
	"golang.org/x/exp/slices"
)

// Vector is a fixed-size, bounds-checked sequence of numeric elements.
//   - size is fixed at construction (Assign may replace it wholesale).
//   - startIndex is logical metadata; it never shifts the At/Set range.
//   - data is exclusively owned, len(data) == size.
type Vector[T Number] struct {
	size       int // element count, 0 < size <= MaxVectorSize
	startIndex int // logical offset, >= 0
	data       []T // owned storage
}

// New creates a zero-filled vector of the given size.
// Implementation:
//   - Stage 1: resolve options (start index defaults to DefaultStartIndex).
//   - Stage 2: validate size in (0, MaxVectorSize], then start index >= 0.
//   - Stage 3: allocate storage; make() zero-fills it.
//
// Errors:
//   - ErrInvalidSize, ErrInvalidStartIndex (wrapped with "Vector.New").
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T Number](size int, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)
	if err := validateShape(size, o.startIndex); err != nil {
		return nil, vectorErrorf(opNew, err)
	}

	return &Vector[T]{
		size:       size,
		startIndex: o.startIndex,
		data:       make([]T, size),
	}, nil
}

// FromSlice creates a vector holding a copy of values.
// Validation matches New with size = len(values); the caller's slice is never aliased.
// Complexity: O(n).
func FromSlice[T Number](values []T, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)
	if err := validateShape(len(values), o.startIndex); err != nil {
		return nil, vectorErrorf(opFromSlice, err)
	}

	return &Vector[T]{
		size:       len(values),
		startIndex: o.startIndex,
		data:       slices.Clone(values),
	}, nil
}

// Size returns the element count.
func (v *Vector[T]) Size() int { return v.size }

// StartIndex returns the logical start index.
func (v *Vector[T]) StartIndex() int { return v.startIndex }

// checkIndex returns ErrIndexOutOfRange unless 0 <= i < size.
func (v *Vector[T]) checkIndex(op string, i int) error {
	if i < 0 || i >= v.size {
		return indexErrorf(op, i, ErrIndexOutOfRange)
	}

	return nil
}

// At returns the element at index i.
// Returns ErrIndexOutOfRange if i < 0 or i >= Size(); no clamping or wraparound.
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(opAt, i); err != nil {
		var zero T
		return zero, err
	}

	return v.data[i], nil
}

// Set writes x at index i.
// Returns ErrIndexOutOfRange if i < 0 or i >= Size(); the vector is left untouched.
// Complexity: O(1).
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.checkIndex(opSet, i); err != nil {
		return err
	}
	v.data[i] = x

	return nil
}

// Clone returns a deep copy: same size, start index and elements, independent storage.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{
		size:       v.size,
		startIndex: v.startIndex,
		data:       slices.Clone(v.data),
	}
}

// Values returns a copy of the elements in index order.
func (v *Vector[T]) Values() []T {
	return slices.Clone(v.data)
}

// Assign replaces v's size, start index and contents with a deep copy of src.
// Implementation:
//   - Stage 1: self-assignment (v == src) is a no-op.
//   - Stage 2: reuse the buffer when sizes match, otherwise allocate a new one
//     before dropping the old; then copy elements.
//
// Errors:
//   - ErrNilVector if src is nil (v untouched).
//
// Complexity:
//   - Time O(n), Space O(n) when the size changes.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if err := validateNotNil(src); err != nil {
		return vectorErrorf(opAssign, err)
	}
	if v == src {
		return nil
	}

	if v.size != src.size {
		v.data = make([]T, src.size)
	}
	copy(v.data, src.data)
	v.size = src.size
	v.startIndex = src.startIndex

	return nil
}

// Equal reports whether v and o have the same size and equal elements.
// The start index does not take part in equality.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	return Equal(v, o)
}
