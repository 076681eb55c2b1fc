// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the vector
// package. Every fallible operation returns one of these (possibly wrapped with
// call-site context) and tests check them via errors.Is. User-triggered
// conditions never panic.

package vector

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." so it can be grepped in logs of
// downstream callers. Public methods wrap these with vectorErrorf to attach the
// operation and arguments; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> size -> start index -> index range -> size mismatch.

var (
	// ErrInvalidSize is returned when a requested size is <= 0 or exceeds MaxVectorSize.
	ErrInvalidSize = errors.New("vector: invalid size")

	// ErrInvalidStartIndex is returned when a requested start index is negative.
	ErrInvalidStartIndex = errors.New("vector: invalid start index")

	// ErrIndexOutOfRange indicates that an element index is outside [0, Size()).
	// At/Set MUST return this, not panic, and never clamp.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates binary operands of differing size (Add, Sub, Dot).
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrNilVector indicates that a nil *Vector was used as an operand.
	ErrNilVector = errors.New("vector: nil vector")
)

// Operation tags used in error wrappers.
const (
	opNew       = "New"
	opFromSlice = "FromSlice"
	opAt        = "At"
	opSet       = "Set"
	opAssign    = "Assign"
	opAdd       = "Add"
	opSub       = "Sub"
	opDot       = "Dot"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opMulScalar = "MulScalar"
)

// vectorErrorf wraps err with a uniform "Vector.<op>: " prefix.
// Use only when err != nil.
// Complexity: O(1).
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("Vector.%s: %w", op, err)
}

// indexErrorf wraps err with the operation and the offending index, the
// vector counterpart of Dense's "(row,col)" context.
func indexErrorf(op string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", op, i, err)
}
