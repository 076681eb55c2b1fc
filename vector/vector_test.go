// SPDX-License-Identifier: MIT
// Package vector_test contains unit tests for construction, access,
// copying and assignment of Vector.
package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/utmatrix/vector"
)

// TestNew_PositiveSize ensures a vector with positive length can be created.
func TestNew_PositiveSize(t *testing.T) {
	v, err := vector.New[int](5)
	require.NoError(t, err)
	require.Equal(t, 5, v.Size())
	require.Equal(t, vector.DefaultStartIndex, v.StartIndex())
	require.Equal(t, []int{0, 0, 0, 0, 0}, v.Values()) // zero-initialized
}

// TestNew_Invalid covers every rejected (size, startIndex) combination.
func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		start   int
		wantErr error
	}{
		{"zero size", 0, 0, vector.ErrInvalidSize},
		{"negative size", -5, 0, vector.ErrInvalidSize},
		{"too large", vector.MaxVectorSize + 1, 0, vector.ErrInvalidSize},
		{"negative start", 5, -2, vector.ErrInvalidStartIndex},
		{"size checked first", -1, -1, vector.ErrInvalidSize},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v, err := vector.New[int](tc.size, vector.WithStartIndex(tc.start))
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, v)
		})
	}
}

// TestNew_ValidShapes checks Size/StartIndex round-trip for valid inputs.
func TestNew_ValidShapes(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ size, start int }{
		{1, 0}, {4, 2}, {10, 0}, {3, 100},
	} {
		v, err := vector.New[float64](tc.size, vector.WithStartIndex(tc.start))
		require.NoError(t, err)
		assert.Equal(t, tc.size, v.Size())
		assert.Equal(t, tc.start, v.StartIndex())
	}
}

// TestNew_LastOptionWins verifies options apply in order.
func TestNew_LastOptionWins(t *testing.T) {
	v := mustNew(t, 3, vector.WithStartIndex(1), nil, vector.WithStartIndex(2))
	require.Equal(t, 2, v.StartIndex())
}

// TestFromSlice_CopiesInput ensures the caller's slice is not aliased.
func TestFromSlice_CopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	v, err := vector.FromSlice(src, vector.WithStartIndex(1))
	require.NoError(t, err)
	require.Equal(t, 1, v.StartIndex())

	src[0] = 99
	require.Equal(t, 1, mustAt(t, v, 0))

	out := v.Values()
	out[1] = 42
	require.Equal(t, 2, mustAt(t, v, 1))
}

// TestFromSlice_Invalid ensures empty input and bad start index are rejected.
func TestFromSlice_Invalid(t *testing.T) {
	_, err := vector.FromSlice([]int{})
	require.ErrorIs(t, err, vector.ErrInvalidSize)

	_, err = vector.FromSlice[int](nil)
	require.ErrorIs(t, err, vector.ErrInvalidSize)

	_, err = vector.FromSlice([]int{1}, vector.WithStartIndex(-1))
	require.ErrorIs(t, err, vector.ErrInvalidStartIndex)
}

// TestClone_EqualToSource ensures a copied vector equals its source.
func TestClone_EqualToSource(t *testing.T) {
	v1 := mustVector(t, 0, 1, 2, 3)
	v2 := v1.Clone()

	require.True(t, vector.Equal(v1, v2))
	require.Equal(t, v1.Size(), v2.Size())
	require.Equal(t, v1.StartIndex(), v2.StartIndex())
}

// TestClone_OwnMemory ensures mutations of the copy and the source are independent.
func TestClone_OwnMemory(t *testing.T) {
	v1 := mustNew(t, 10, vector.WithStartIndex(3))
	require.NoError(t, v1.Set(0, 1))

	v2 := v1.Clone()
	require.Equal(t, 3, v2.StartIndex())
	require.NoError(t, v2.Set(0, 2))
	require.NoError(t, v1.Set(9, 7))

	require.Equal(t, 1, mustAt(t, v1, 0))
	require.Equal(t, 2, mustAt(t, v2, 0))
	require.Equal(t, 0, mustAt(t, v2, 9))
}

// TestSetGet validates Set followed by At on valid indices.
func TestSetGet(t *testing.T) {
	v := mustNew(t, 4)

	for i := 0; i < v.Size(); i++ {
		require.NoError(t, v.Set(i, i*10))
	}
	for i := 0; i < v.Size(); i++ {
		require.Equal(t, i*10, mustAt(t, v, i))
	}
}

// TestAtSetOutOfRange ensures At and Set reject indices outside [0, Size()).
func TestAtSetOutOfRange(t *testing.T) {
	v := mustVector(t, 1, 2, 3, 4)

	_, err := v.At(-1)
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)

	_, err = v.At(4)
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)

	err = v.Set(-1, 1)
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)

	err = v.Set(5, 1)
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)

	require.Equal(t, []int{1, 2, 3, 4}, v.Values()) // untouched
}

// TestAtIgnoresStartIndex pins the access range to [0, Size()) for any start index.
func TestAtIgnoresStartIndex(t *testing.T) {
	v := mustNew(t, 4, vector.WithStartIndex(2))

	require.NoError(t, v.Set(0, 5))
	require.Equal(t, 5, mustAt(t, v, 0))

	_, err := v.At(4)
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.At(5)
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)
}

// TestAt_ErrorContext checks the wrapped message carries op and index.
func TestAt_ErrorContext(t *testing.T) {
	v := mustNew(t, 2)
	_, err := v.At(7)
	require.EqualError(t, err, "Vector.At(7): vector: index out of range")
}

// TestAssign_Self ensures v.Assign(v) leaves v unchanged.
func TestAssign_Self(t *testing.T) {
	v := mustVector(t, 1, 2, 3, 4)
	require.NoError(t, v.Assign(v))
	require.Equal(t, []int{1, 2, 3, 4}, v.Values())
	require.Equal(t, 4, v.Size())
}

// TestAssign_EqualSize copies contents between same-size vectors.
func TestAssign_EqualSize(t *testing.T) {
	v1 := mustVector(t, 1, 1, 1, 1)
	v2 := mustNew(t, 4)

	require.NoError(t, v2.Assign(v1))
	require.True(t, vector.Equal(v1, v2))

	// Independent storage after assignment.
	require.NoError(t, v2.Set(0, 9))
	require.Equal(t, 1, mustAt(t, v1, 0))
}

// TestAssign_ChangesSize ensures assignment shrinks and grows the target.
func TestAssign_ChangesSize(t *testing.T) {
	small := mustNew(t, 4)
	big := mustNew(t, 5)
	require.NoError(t, big.Assign(small))
	require.Equal(t, 4, big.Size())

	src := mustVector(t, 1, 1, 1, 1, 1)
	dst := mustNew(t, 4)
	require.NoError(t, dst.Assign(src))
	require.True(t, vector.Equal(dst, mustVector(t, 1, 1, 1, 1, 1)))
	require.Equal(t, 5, dst.Size())
}

// TestAssign_CopiesStartIndex ensures start index travels with assignment.
func TestAssign_CopiesStartIndex(t *testing.T) {
	src := mustNew(t, 3, vector.WithStartIndex(2))
	dst := mustNew(t, 3)
	require.NoError(t, dst.Assign(src))
	require.Equal(t, 2, dst.StartIndex())
}

// TestAssign_Nil rejects a nil source and leaves the target untouched.
func TestAssign_Nil(t *testing.T) {
	v := mustVector(t, 1, 2)
	err := v.Assign(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
	require.Equal(t, []int{1, 2}, v.Values())
}
