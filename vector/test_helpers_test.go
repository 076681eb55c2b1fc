// SPDX-License-Identifier: MIT
package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/utmatrix/vector"
)

// mustVector builds an int vector from literal values or fails the test.
func mustVector(t testing.TB, values ...int) *vector.Vector[int] {
	t.Helper()
	v, err := vector.FromSlice(values)
	require.NoError(t, err)

	return v
}

// mustNew builds a zero-filled vector or fails the test.
func mustNew(t testing.TB, size int, opts ...vector.Option) *vector.Vector[int] {
	t.Helper()
	v, err := vector.New[int](size, opts...)
	require.NoError(t, err)

	return v
}

// mustAt reads v[i] or fails the test.
func mustAt[T vector.Number](t testing.TB, v *vector.Vector[T], i int) T {
	t.Helper()
	x, err := v.At(i)
	require.NoError(t, err)

	return x
}
