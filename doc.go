// Package utmatrix is a small numeric-container toolkit: bounded vectors with
// value semantics and upper-triangular matrices built from them.
//
// What is inside?
//
//	A generic, zero-magic pair of packages that bring together:
//		• vector/ — fixed-size, bounds-checked Vector[T] with deep copy,
//		  self-safe assignment, equality, scalar and vector arithmetic
//		• matrix/ — UpperTriangular[T], row i stored as a Vector of size n-i
//		  with start index i
//
// Guarantees:
//
//   - No panics on user input: every violation is a sentinel error
//     (ErrInvalidSize, ErrInvalidStartIndex, ErrIndexOutOfRange,
//     ErrSizeMismatch) matched with errors.Is.
//   - Failed calls leave their operands untouched.
//   - Values never share storage; Clone and Assign are deep.
//
// Quick ASCII example (order 3):
//
//	    [a b c]
//	    [0 d e]
//	    [0 0 f]
//
//	stores rows [a b c], [d e], [f].
//
//	go get github.com/katalvlaran/utmatrix
package utmatrix
