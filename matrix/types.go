// SPDX-License-Identifier: MIT

// Package matrix: limits and operation tags.
package matrix

import "fmt"

// MaxMatrixSize is the largest order accepted by New and FromRows.
// The largest row (n elements) stays far below vector.MaxVectorSize.
const MaxMatrixSize = 10000

// Operation tags used in error wrappers.
const (
	opNew      = "New"
	opFromRows = "FromRows"
	opAt       = "At"
	opSet      = "Set"
	opRow      = "Row"
	opAssign   = "Assign"
	opAdd      = "Add"
	opSub      = "Sub"
	opMulVec   = "MulVec"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("UpperTriangular.%s: %w", op, err)
}

// cellErrorf wraps err with the operation and (i,j) coordinates.
func cellErrorf(op string, i, j int, err error) error {
	return fmt.Errorf("UpperTriangular.%s(%d,%d): %w", op, i, j, err)
}
