// Package matrix implements an upper-triangular square matrix built from
// rows of vector.Vector.
//
// Layout:
//
//	For order n, row i is a vector of size n-i whose start index is i, so
//	column j of row i (j >= i) lives at row position j-i:
//
//	    row 0: [a00 a01 a02]   start 0
//	    row 1:     [a11 a12]   start 1
//	    row 2:         [a22]   start 2
//
//	Cells below the diagonal are implicitly zero and have no storage: At
//	returns zero there and Set fails with ErrBelowDiagonal.
//
// Key features:
//   - New(n) / FromRows(rows) with strict shape validation
//   - At / Set with (row, col) bounds checks
//   - Clone, Assign (self-safe), Equal / NotEqual
//   - Add, Sub rowwise via vector.Add / vector.Sub
//   - MulVec: upper-triangular matrix × vector
//
// Memory is n(n+1)/2 elements; every row exclusively owns its storage.
package matrix
