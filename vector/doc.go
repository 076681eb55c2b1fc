// Package vector implements a bounded, bounds-checked numeric vector with
// value semantics.
//
// What is a Vector?
//
//	A Vector[T] owns exactly Size() elements of a numeric type T, fixed at
//	construction and capped by MaxVectorSize. Copies (Clone, Assign) are deep:
//	two vectors never share storage.
//
// Key features:
//   - validated constructors: New(size, WithStartIndex(k)), FromSlice(values)
//   - safe element access: At/Set return ErrIndexOutOfRange, never panic
//   - self-safe assignment: v.Assign(v) is a no-op
//   - equality ignoring start index: Equal / NotEqual
//   - scalar ops: AddScalar, SubScalar, MulScalar
//   - vector ops: Add, Sub, Dot (ErrSizeMismatch on differing sizes)
//
// Start index:
//
//	Every vector carries a logical start index. It is metadata for row-based
//	consumers (an upper-triangular matrix stores row i with start index i);
//	At/Set always accept exactly [0, Size()).
//
// Usage:
//
//	import "github.com/katalvlaran/utmatrix/vector"
//
//	a, _ := vector.FromSlice([]int{0, 1, 2, 3})
//	b, _ := vector.AddScalar(a, 4) // [4 5 6 7]
//	d, err := vector.Dot(a, b)
//	if err != nil {
//	  // handle ErrSizeMismatch
//	}
//
// Vectors are not safe for concurrent mutation.
package vector
