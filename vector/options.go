// SPDX-License-Identifier: MIT

// Package vector: functional configuration for constructors.
// This file defines:
//   - Option (functional setter over unexported options),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper that resolves defaults then user setters.
//
// Unlike setters that can validate on their own, option VALUES here are
// checked by the constructor (New/FromSlice), so a bad start index surfaces
// as ErrInvalidStartIndex instead of a panic.
package vector

// DefaultStartIndex is the logical offset recorded when WithStartIndex is not given.
const DefaultStartIndex = 0

// Option mutates internal options. Safe to apply repeatedly; last writer wins.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	startIndex int // DefaultStartIndex
}

// WithStartIndex records k as the vector's logical start index.
// The start index is metadata: it does not shift the range accepted by At/Set.
// Negative k is rejected by the constructor with ErrInvalidStartIndex.
// Complexity: O(1).
func WithStartIndex(k int) Option {
	return func(o *options) { o.startIndex = k }
}

// gatherOptions applies defaults, then user setters in order.
func gatherOptions(user ...Option) options {
	o := options{
		startIndex: DefaultStartIndex,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
