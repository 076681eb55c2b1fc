// SPDX-License-Identifier: MIT

// Package vector: element constraint and capacity limits.
package vector

import "golang.org/x/exp/constraints"

// MaxVectorSize is the upper bound on the size accepted by New and FromSlice.
// It bounds a single allocation; larger requests fail with ErrInvalidSize.
const MaxVectorSize = 100000000

// Number is the set of element types a Vector can hold: every built-in type
// that supports +, -, * and ==.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}
