// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (wrapped with context) and
// tests check them via errors.Is. No operation panics on user input.

package matrix

import (
	"errors"

	"github.com/katalvlaran/utmatrix/vector"
)

// SHARED SENTINELS
// ----------------
// Rows are vector.Vector values, so conditions that originate in the vector
// layer keep the vector sentinels. The aliases below make errors.Is work
// regardless of which layer detected the violation.

var (
	// ErrInvalidSize is returned when a requested order is <= 0 or exceeds MaxMatrixSize.
	ErrInvalidSize = vector.ErrInvalidSize

	// ErrIndexOutOfRange indicates a row or column index outside [0, Size()).
	ErrIndexOutOfRange = vector.ErrIndexOutOfRange

	// ErrSizeMismatch indicates operands of differing order, a vector of the
	// wrong length in MulVec, or a malformed row passed to FromRows.
	ErrSizeMismatch = vector.ErrSizeMismatch
)

var (
	// ErrBelowDiagonal is returned by Set for (i, j) with j < i; that region is
	// implicitly zero and has no storage.
	ErrBelowDiagonal = errors.New("matrix: write below the diagonal")

	// ErrNilMatrix indicates that a nil *UpperTriangular was used as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
