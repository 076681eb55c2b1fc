// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/utmatrix/matrix"
)

// mustFromRows builds an int matrix from stored rows or fails the test.
func mustFromRows(t testing.TB, rows ...[]int) *matrix.UpperTriangular[int] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// mustAt reads m(i,j) or fails the test.
func mustAt(t testing.TB, m *matrix.UpperTriangular[int], i, j int) int {
	t.Helper()
	x, err := m.At(i, j)
	require.NoError(t, err)

	return x
}
